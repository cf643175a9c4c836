package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	lzerrors "github.com/labzen/tool/core/errors"
	"github.com/labzen/tool/core/log"
	"github.com/labzen/tool/utils/bytex"
	"github.com/labzen/tool/utils/mapx"
	"github.com/labzen/tool/utils/stringx"
)

func newHexCmd(a *app) *cobra.Command {
	var upper bool

	hexCmd := &cobra.Command{
		Use:   "hex",
		Short: "Hex encodings of text and integers",
	}
	hexCmd.PersistentFlags().BoolVarP(&upper, "upper", "u", false, "upper case hex digits (default: bytes.uppercase)")

	uppercase := func(cmd *cobra.Command) bool {
		if cmd.Flags().Changed("upper") {
			return upper
		}
		return a.config.GetBool(keyBytesUppercase, false)
	}

	hexCmd.AddCommand(
		&cobra.Command{
			Use:   "encode <text>",
			Short: "Prints the hex digits of the text's Latin-1 bytes",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := bytex.ASCIIToBytes(args[0])
				if err != nil {
					return a.fail(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), bytex.BytesToHex(b, uppercase(cmd)))
				return nil
			},
		},
		&cobra.Command{
			Use:   "decode <hex>",
			Short: "Prints the text encoded by hex digits",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := bytex.HexToBytes(args[0])
				if err != nil {
					return a.fail(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), bytex.BytesToASCII(b))
				return nil
			},
		},
		&cobra.Command{
			Use:   "binary <hex>",
			Short: "Prints the bits of hex digits",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				bits, err := bytex.HexToBinaryString(args[0])
				if err != nil {
					return a.fail(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), bits)
				return nil
			},
		},
		&cobra.Command{
			Use:   "int <number>",
			Short: "Prints the 4-byte big-endian encoding of a 32-bit integer",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := intArg("hex int", "number", args[0])
				if err != nil {
					return a.fail(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), bytex.BytesToHex(bytex.IntToBytes(int32(n)), uppercase(cmd)))
				return nil
			},
		},
		&cobra.Command{
			Use:   "long <number>",
			Short: "Prints the 8-byte big-endian encoding of a 64-bit integer",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := longArg("hex long", "number", args[0])
				if err != nil {
					return a.fail(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), bytex.BytesToHex(bytex.LongToBytes(n), uppercase(cmd)))
				return nil
			},
		},
	)
	return hexCmd
}

func newPackCmd(a *app) *cobra.Command {
	var codec string

	c := &cobra.Command{
		Use:   "pack <key=value...>",
		Short: "Serializes key=value pairs into a hex encoded envelope",
		Long: `Serializes key=value pairs into a hex encoded envelope.

Available codecs: gob, json, yaml, toml. The envelope records the codec,
so unpack needs no flag.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := make(map[string]string, len(args))
			for _, arg := range args {
				kv, ok := stringx.Cut(arg, "=", true)
				if !ok || stringx.IsBlank(kv.First()) {
					return a.fail(lzerrors.InvalidFormat(lzerrors.ModuleCLI, "pack", arg, "key=value"))
				}
				entries[kv.First()] = kv.Second()
			}

			data, err := bytex.ObjectToBytesWith(codec, entries)
			if err != nil {
				return a.fail(err)
			}
			a.logger.Debug("packed entries", log.Fields{
				"codec":   codec,
				"entries": len(entries),
				"size":    humanize.Bytes(uint64(len(data))),
			})
			fmt.Fprintln(cmd.OutOrStdout(), bytex.BytesToHex(data, false))
			return nil
		},
	}

	c.Flags().StringVarP(&codec, "codec", "c", "gob", "codec: "+strings.Join(bytex.DefaultSerializer().Codecs(), ", "))
	return c
}

func newUnpackCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <hex>",
		Short: "Prints the key=value pairs of an envelope written by pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := bytex.HexToBytes(args[0])
			if err != nil {
				return a.fail(err)
			}

			entries := make(map[string]string)
			if err := bytex.BytesToObject(data, &entries); err != nil {
				return a.fail(err)
			}

			for _, e := range mapx.SortedEntries(entries) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", e.First(), e.Second())
			}
			return nil
		},
	}
}
