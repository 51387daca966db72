package funct

func Map[T any, R any](slide []T, transformer func(x T) (R, error)) ([]R, error) {
	newSlide := make([]R, 0, len(slide))

	for _, v := range slide {
		newValue, err := transformer(v)
		if err != nil {
			return nil, err
		}

		newSlide = append(
			newSlide,
			newValue,
		)
	}
	return newSlide, nil
}

func Filter[T any](slide []T, cond func(x T) bool) []T {
	result := make([]T, 0, len(slide))
	for _, v := range slide {
		if cond(v) {
			result = append(result, v)
		}
	}
	return result
}

func Index[T any](slide []T, cond func(x T) bool) int {
	for i, v := range slide {
		if cond(v) {
			return i
		}
	}
	return -1
}

func Some[T any](slide []T, cond func(x T) bool) bool {
	return Index(slide, cond) != -1
}

// Without returns slide minus every element equal to value, order kept.
func Without[T comparable](slide []T, value T) []T {
	return Filter(slide, func(x T) bool {
		return x != value
	})
}

// Uniq keeps the first occurrence of every element.
func Uniq[T comparable](slide []T) []T {
	seen := make(map[T]struct{}, len(slide))
	return Filter(slide, func(x T) bool {
		if _, ok := seen[x]; ok {
			return false
		}
		seen[x] = struct{}{}
		return true
	})
}
