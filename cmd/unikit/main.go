// Command unikit performs Unicode property queries against the unikit
// tables.
//
//	unikit fold U+004D       case folding of one codepoint
//	unikit gencat U+1F600    General Category of one codepoint
//	unikit gentab            print the eight encoded data tables
//	unikit genrange Lu       maximal codepoint runs of one category
//
// Codepoint arguments use the literal form "U+" followed by one to six
// hex digits, case insensitive.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/canidlogic/unikit"
	"github.com/canidlogic/unikit/unikitdata"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "unikit:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "unikit",
		Short:         "query Unicode character properties from compact embedded tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newFoldCmd(), newGencatCmd(), newGentabCmd(), newGenrangeCmd())
	return root
}

// queryContext initializes the library with the stock tables.
func queryContext() (*unikit.Context, error) {
	src, err := unikitdata.Source()
	if err != nil {
		return nil, err
	}
	return unikit.Init(src)
}

// parseCodepoint parses the "U+004D" literal form: a case-insensitive
// "U+" prefix followed by one to six hex digits, at most U+10FFFF.
func parseCodepoint(s string) (rune, error) {
	if len(s) < 3 || (s[0] != 'U' && s[0] != 'u') || s[1] != '+' {
		return 0, fmt.Errorf("invalid codepoint parameter %q", s)
	}
	digits := s[2:]
	if len(digits) > 6 {
		return 0, fmt.Errorf("invalid codepoint parameter %q", s)
	}
	var cv rune
	for i := 0; i < len(digits); i++ {
		var d rune
		switch c := digits[i]; {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		default:
			return 0, fmt.Errorf("invalid codepoint parameter %q", s)
		}
		cv = cv<<4 | d
	}
	if cv > 0x10FFFF {
		return 0, fmt.Errorf("codepoint parameter %q out of range", s)
	}
	return cv, nil
}

func newFoldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fold U+XXXX",
		Short: "print the case folding of a codepoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cv, err := parseCodepoint(args[0])
			if err != nil {
				return err
			}
			ctx, err := queryContext()
			if err != nil {
				return err
			}
			f, err := ctx.Fold(cv)
			if err != nil {
				return err
			}
			parts := make([]string, 0, f.Len())
			for _, cp := range f.Codepoints() {
				parts = append(parts, fmt.Sprintf("U+%04x", cp))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			return nil
		},
	}
}

func newGencatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gencat U+XXXX",
		Short: "print the General Category of a codepoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cv, err := parseCodepoint(args[0])
			if err != nil {
				return err
			}
			ctx, err := queryContext()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ctx.Category(cv))
			return nil
		},
	}
}

func newGentabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gentab",
		Short: "print the eight encoded data tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := unikitdata.Source()
			if err != nil {
				return err
			}
			for _, key := range unikit.AllTableKeys() {
				data, ok := src.Fetch(key)
				if !ok {
					return fmt.Errorf("data source has no %s table", key)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n%s\n", key, data)
			}
			return nil
		},
	}
}

func newGenrangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genrange CC",
		Short: "print the maximal codepoint runs of a General Category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := unikit.ParseCategory(args[0])
			if err != nil {
				return err
			}
			ctx, err := queryContext()
			if err != nil {
				return err
			}
			for cv := rune(0); cv <= 0x10FFFF; cv++ {
				if ctx.Category(cv) != cat {
					continue
				}
				lo := cv
				for cv+1 <= 0x10FFFF && ctx.Category(cv+1) == cat {
					cv++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "U+%04x U+%04x\n", lo, cv)
			}
			return nil
		},
	}
}
