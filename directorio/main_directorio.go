package main

import "github.com/CPU-commits/Intranet_BDirectorio/directorio/server"

func main() {
	server.Init()
}
