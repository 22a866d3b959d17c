package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	secret := "bancohoras2026"
	if len(os.Args) > 1 {
		secret = os.Args[1]
	}
	h, err := bcrypt.GenerateFromPassword([]byte(secret), 12)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(h))
}
