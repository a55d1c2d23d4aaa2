package domain

import "strings"

// ParseCommandArgs strips the leading command token and returns the rest of
// the message.
func ParseCommandArgs(args string) string {
	command := strings.Split(args, " ")
	return strings.Join(command[1:], " ")
}

// ParseCommand returns the leading command token of a message.
func ParseCommand(args string) string {
	command := strings.Split(args, " ")
	return command[0]
}
