package main

import (
	"errors"
	"strconv"
	"strings"
)

var errArraySize = errors.New("array size must be a positive integer")

func createArray(size int) ([]int, error) {
	if size <= 0 {
		return nil, errArraySize
	}
	return make([]int, size), nil
}

// initializeArray fills every slot with its own index.
func initializeArray(a []int) {
	for i := range a {
		a[i] = i
	}
}

// formatArray renders a as "[ 0 1 2 ]".
func formatArray(a []int) string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, v := range a {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteString(" ")
	}
	sb.WriteString("]")
	return sb.String()
}
