package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// readLine prompts and reads one trimmed line of input.
func (u *UI) readLine(prompt string) (string, error) {
	fmt.Fprintln(u.out, prompt)
	line, err := u.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt re-prompts until the user enters a valid integer.
func (u *UI) promptInt(prompt string) (int, error) {
	for {
		line, err := u.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(u.out, "Invalid input. Please enter a valid integer.")
			continue
		}
		return n, nil
	}
}

// promptDecimal re-prompts until the user enters a valid number.
func (u *UI) promptDecimal(prompt string) (decimal.Decimal, error) {
	for {
		line, err := u.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		d, convErr := decimal.NewFromString(line)
		if convErr != nil {
			fmt.Fprintln(u.out, "Invalid input. Please enter a valid number.")
			continue
		}
		return d, nil
	}
}
