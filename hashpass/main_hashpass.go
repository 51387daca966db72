package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Prints a bcrypt hash for ADMIN_CREDENTIALS. The password is read from
// the first line of stdin so it never shows up in the shell history.
func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	correo := flag.String("correo", "", "prefix the output with correo: for ADMIN_CREDENTIALS")
	flag.Parse()

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		log.Fatalf("No password on stdin")
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		log.Fatalf("Empty password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), *cost)
	if err != nil {
		log.Fatalf("Error hashing password: %v", err)
	}
	if *correo != "" {
		fmt.Printf("%s:%s\n", strings.ToLower(strings.TrimSpace(*correo)), hash)
		return
	}
	fmt.Println(string(hash))
}
