package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	cc "github.com/ivanpirog/coloredcobra"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/pavanmanishd/array/internal/config"
	"github.com/pavanmanishd/array/internal/demo"
	"github.com/pavanmanishd/array/internal/logging"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// fs is where --output files are created.
var fs = afero.NewOsFs()

func init() {
	rootCmd.Flags().IntP("size", "s", 10, "Number of rows and columns of the generated matrices")
	lo.Must0(viper.BindPFlag(config.KeySize, rootCmd.Flags().Lookup("size")))

	rootCmd.Flags().Int("arena-chunk", 0, "Slots per arena chunk for product columns (0 uses the heap)")
	lo.Must0(viper.BindPFlag(config.KeyArenaChunk, rootCmd.Flags().Lookup("arena-chunk")))

	rootCmd.Flags().StringP("output", "o", "", "Write the product to this file instead of standard output")
	lo.Must0(viper.BindPFlag(config.KeyOutputPath, rootCmd.Flags().Lookup("output")))

	rootCmd.PersistentFlags().String("log-level", "info", "Minimum log level")
	lo.Must0(viper.BindPFlag(config.KeyLogsLevel, rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	lo.Must0(viper.BindPFlag(config.KeyLogsJSON, rootCmd.PersistentFlags().Lookup("log-json")))

	rootCmd.AddCommand(configCmd)
}

// rootCmd computes and prints the column-swap product.
var rootCmd = &cobra.Command{
	Use:           config.AppName,
	Short:         "Multiply two column-swapped matrices built from growable arrays",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.Load()
		if err != nil {
			return err
		}
		log := logging.New(s, cmd.ErrOrStderr())
		log.WithField("size", s.Size).Debug("starting")

		if s.Output == "" {
			return demo.Run(s, log, cmd.OutOrStdout())
		}
		f, err := fs.Create(s.Output)
		if err != nil {
			return err
		}
		err = demo.Run(s, log, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err == nil {
			log.WithField("path", s.Output).Info("product written")
		}
		return err
	},
}

var errUnknownKey = errors.New("unknown key")

// lookupField returns the field for key, suggesting the closest known key
// when there is none.
func lookupField(key string) (config.Field, error) {
	if f, ok := config.Default[key]; ok {
		return f, nil
	}
	closest := lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})
	return config.Field{}, fmt.Errorf("%w %s, did you mean %s?", errUnknownKey, key, closest)
}

// configCmd describes configuration keys with their defaults and
// environment variables. Without arguments every key is listed.
var configCmd = &cobra.Command{
	Use:   "config [key...]",
	Short: "Describe configuration keys, defaults and environment variables",
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := lo.Values(config.Default)
		if len(args) > 0 {
			fields = make([]config.Field, 0, len(args))
			for _, key := range args {
				f, err := lookupField(key)
				if err != nil {
					return err
				}
				fields = append(fields, f)
			}
		} else {
			sort.Slice(fields, func(i, j int) bool {
				return fields[i].Key < fields[j].Key
			})
		}
		return describe(cmd.OutOrStdout(), fields)
	},
}

func describe(w io.Writer, fields []config.Field) error {
	for _, f := range fields {
		_, err := fmt.Fprintf(w, "%s\n  default: %v\n  env:     %s\n  %s\n", f.Key, f.Value, f.Env(), f.Description)
		if err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
