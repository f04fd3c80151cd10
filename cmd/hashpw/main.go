// Command hashpw prints a bcrypt hash for ADMIN_PASSWORD_HASH.
//
//	hashpw 's3cret'
//	echo -n 's3cret' | hashpw
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/monishsatpuri/blogcms/internal/infrastructure/auth"
)

func main() {
	password, err := readPassword(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashpw: %v\n", err)
		os.Exit(2)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashpw: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}

func readPassword(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("no password given: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("empty password")
	}
	return line, nil
}
