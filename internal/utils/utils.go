// Package utils holds the interactive prompts shared by commands.
package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// InputUtils reads answers from In and writes prompts to Out. Nil streams
// mean stdin and stdout.
type InputUtils struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

func (i *InputUtils) init() {
	if i.reader != nil {
		return
	}
	if i.In == nil {
		i.In = os.Stdin
	}
	if i.Out == nil {
		i.Out = os.Stdout
	}
	i.reader = bufio.NewReader(i.In)
}

// GetUserChoice prompts until one of validOptions is entered. With force, or
// once input runs out, the first option wins.
func (i *InputUtils) GetUserChoice(validOptions []string, prompt string, force bool) string {
	if force || len(validOptions) == 0 {
		if len(validOptions) == 0 {
			return ""
		}
		return validOptions[0]
	}
	i.init()

	for {
		fmt.Fprintf(i.Out, "%s (%s): ", prompt, strings.Join(validOptions, "/"))
		input, err := i.reader.ReadString('\n')
		choice := strings.TrimSpace(strings.ToLower(input))
		if slices.Contains(validOptions, choice) {
			return choice
		}
		if err != nil {
			return validOptions[0]
		}
		fmt.Fprintf(i.Out, "Invalid option. Please choose from: %s\n", strings.Join(validOptions, ", "))
	}
}

// AskConfirmation asks a yes/no question; anything but y or yes is a no.
func (i *InputUtils) AskConfirmation(message string, force bool) bool {
	if force {
		return true
	}
	i.init()

	fmt.Fprintf(i.Out, "%s (y/N): ", message)
	response, _ := i.reader.ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
