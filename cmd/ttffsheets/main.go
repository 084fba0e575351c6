// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ttffsheets exports every sheet of the experiment workbook to a CSV
// file.
//
// Usage:
//
//	ttffsheets [-config file] [-o dir] workbook.xlsx
//
// Each sheet is written to "<sheet>.csv" in the export directory, with
// spaces and slashes in the sheet name replaced by underscores. These
// files are the input of ttffgroup and ttffplot.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goggles-ttff/ttffstat/internal/config"
	"github.com/goggles-ttff/ttffstat/internal/logx"
	"github.com/goggles-ttff/ttffstat/sheets"
)

func main() {
	log.SetPrefix("ttffsheets: ")
	log.SetFlags(0)
	if err := ttffsheets(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err != flag.ErrHelp {
			log.Fatal(err)
		}
		os.Exit(2)
	}
}

func ttffsheets(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("ttffsheets", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: ttffsheets [options] workbook.xlsx\n")
		fmt.Fprintf(wErr, "options:\n")
		flags.PrintDefaults()
	}
	flagConfig := flags.String("config", "ttff.yaml", "read settings from `file`")
	flagOut := flags.String("o", "", "write the CSV files to `dir`")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return flag.ErrHelp
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		return err
	}
	out := cfg.Cohort.ExportDir
	if *flagOut != "" {
		out = *flagOut
	}
	logger := logx.New(wErr, logx.ParseLevel(cfg.Log.Level))
	defer logger.Sync()

	paths, err := sheets.Export(flags.Arg(0), out, logger)
	for _, p := range paths {
		fmt.Fprintf(w, "Zapisano: %s\n", p)
	}
	return err
}
