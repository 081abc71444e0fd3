// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/fatih/color"
)

var Logger *UserLog

// UserLog prints progress to the user while keeping a copy of every line in
// the log file
type UserLog struct {
	log       logging.Logger
	Writer    io.Writer
	ErrWriter io.Writer
}

// New creates a user log printing to [out] and errors to [errOut]
func New(log logging.Logger, out io.Writer, errOut io.Writer) *UserLog {
	if log == nil {
		log = logging.NoLog{}
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &UserLog{
		log:       log,
		Writer:    out,
		ErrWriter: errOut,
	}
}

// NewUserLog sets the process wide user log
func NewUserLog(log logging.Logger, out io.Writer, errOut io.Writer) *UserLog {
	Logger = New(log, out, errOut)
	return Logger
}

// PrintToUser prints msg directly on the screen, but also to log file
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) {
	ul.print(ul.out(), fmt.Sprintf(msg, args...)+"\n")
	ul.info(msg, args...)
}

// ErrorToUser prints msg on the error output, but also to log file
func (ul *UserLog) ErrorToUser(msg string, args ...interface{}) {
	ul.print(ul.errOut(), fmt.Sprintf(msg, args...)+"\n")
	ul.Error(msg, args...)
}

func (ul *UserLog) print(w io.Writer, msg string) {
	fmt.Fprint(w, msg)
}

func (ul *UserLog) info(msg string, args ...interface{}) {
	if ul != nil {
		ul.log.Info(fmt.Sprintf(msg, args...))
	}
}

// Info prints to the log file
func (ul *UserLog) Info(msg string, args ...interface{}) {
	ul.info(msg, args...)
}

// Error prints to the log file
func (ul *UserLog) Error(msg string, args ...interface{}) {
	if ul != nil {
		ul.log.Error(fmt.Sprintf(msg, args...))
	}
}

// GreenCheckmarkToUser prints a green checkmark to the user before the message
func (ul *UserLog) GreenCheckmarkToUser(msg string, args ...interface{}) {
	checkmark := "\u2713" // Unicode for checkmark symbol
	green := color.New(color.FgHiGreen).SprintFunc()
	ul.PrintToUser(green(checkmark)+" "+msg, args...)
}

func (ul *UserLog) RedXToUser(msg string, args ...interface{}) {
	xmark := "\u2717" // Unicode for X symbol
	red := color.New(color.FgHiRed).SprintFunc()
	ul.ErrorToUser(red(xmark)+" "+msg, args...)
}

func (ul *UserLog) out() io.Writer {
	if ul == nil || ul.Writer == nil {
		return os.Stdout
	}
	return ul.Writer
}

func (ul *UserLog) errOut() io.Writer {
	if ul == nil || ul.ErrWriter == nil {
		return os.Stderr
	}
	return ul.ErrWriter
}

// ConvertToStringWithThousandSeparator formats [input] grouping digits by
// thousands with underscores, ie 12_345_678
func ConvertToStringWithThousandSeparator(input uint64) string {
	p := message.NewPrinter(language.English)
	s := p.Sprintf("%d", input)
	return strings.ReplaceAll(s, ",", "_")
}
