// Package console is the line based terminal the client talks through.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"hotel/shared"
	"hotel/shared/input"
)

const (
	promptChoice  = "Please make your choice: "
	messageNotInt = "Your input is invalid!"
)

// ErrAborted is returned once input is closed; the session ends without error.
var ErrAborted = errors.New("input closed")

type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

type Console struct {
	in  *bufio.Reader
	out io.Writer
	err io.Writer
}

func New(streams Streams) *Console {
	return &Console{
		in:  bufio.NewReader(streams.In),
		out: streams.Out,
		err: streams.Err,
	}
}

func (c *Console) Out() io.Writer {
	return c.out
}

func (c *Console) Print(a ...any) {
	fmt.Fprint(c.out, a...)
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Errorln writes to the error stream.
func (c *Console) Errorln(a ...any) {
	fmt.Fprintln(c.err, a...)
}

// ReadLine returns the next line without its line ending. A last line with
// no newline is still returned; after that ErrAborted.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}

		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}

		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) Prompt(label string) (string, error) {
	c.Print(label)

	return c.ReadLine()
}

// ReadChoice asks until the answer is an integer.
func (c *Console) ReadChoice() (int, error) {
	for {
		raw, err := c.Prompt(promptChoice)
		if err != nil {
			return 0, err
		}

		choice, err := shared.ConvertStringToInt(raw)
		if err == nil {
			return choice, nil
		}

		c.Println(messageNotInt)
	}
}

// Ask prompts for field until an answer is accepted. Rule errors and closed
// input end the loop.
func Ask[T any](ctx context.Context, c *Console, field input.Field[T]) (T, error) {
	var zero T

	prompt := field.Prompt

	for {
		raw, err := c.Prompt(prompt)
		if err != nil {
			return zero, err
		}

		verdict, err := field.Evaluate(ctx, raw)
		if err != nil {
			return zero, err //nolint:wrapcheck
		}

		if verdict.Accepted {
			return verdict.Value, nil
		}

		if field.Retry != "" {
			prompt = field.Retry

			continue
		}

		if verdict.Reason != "" {
			c.Println(verdict.Reason)
		}
	}
}
