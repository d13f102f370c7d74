package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/LiYongSheng6/arith"
)

const historyFile = ".mathgen_history"

// practice asks each exercise in turn and checks each answer as it is typed.
// Ctrl+D or Ctrl+C ends the session early. The report covers the exercises
// that were answered.
func practice(ex []arith.Exercise) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	var exLines, ansLines []string
	for i, x := range ex {
		q := arith.FormatExercise(i+1, x.Text)
		in, err := ln.Prompt(q + " ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			break
		}
		if err != nil {
			return err
		}
		in = strings.TrimSpace(in)
		ln.AppendHistory(in)
		exLines = append(exLines, q)
		ansLines = append(ansLines, arith.AnswerLabel+strconv.Itoa(i+1)+": "+in)

		got, err := arith.ParseRational(in)
		switch {
		case err != nil:
			fmt.Printf("  %v; the answer is %v\n", err, x.Answer)
		case got.Equal(x.Answer):
			fmt.Println("  correct")
		default:
			fmt.Printf("  wrong; the answer is %v\n", x.Answer)
		}
	}
	fmt.Print(arith.Grade(exLines, ansLines))
	return nil
}
