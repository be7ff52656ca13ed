// Command hashindexctl inspects a persisted hashindex file: header
// fields, live entry count, byte size, and an optional hex dump of
// every live key/value pair. It exists to exercise and inspect the
// on-disk format from the command line; it is not the archival backup
// system's own CLI.
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/archivekit/hashindex"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "hashindexctl",
		Usage: "inspect a hashindex file",
		Commands: []*cli.Command{
			statCommand(),
			dumpCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "hashindexctl:", err)
		os.Exit(1)
	}
}

func statCommand() *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "print header fields and live entry count",
		ArgsUsage: "<path>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("path required")
			}
			idx, err := hashindex.Read(path)
			if err != nil {
				return err
			}
			defer idx.Free()

			fmt.Printf("num_entries:  %d\n", idx.Len())
			fmt.Printf("num_buckets:  %d\n", idx.NumBuckets())
			fmt.Printf("key_size:     %d\n", idx.KeySize())
			fmt.Printf("value_size:   %d\n", idx.ValueSize())
			fmt.Printf("byte_size:    %d\n", idx.ByteSize())
			return nil
		},
	}
}

func dumpCommand() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "hex-dump every live key/value pair",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "stop after this many entries (0 = no limit)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("path required")
			}
			limit := int(cmd.Int("limit"))

			idx, err := hashindex.Read(path)
			if err != nil {
				return err
			}
			defer idx.Free()

			n := 0
			cursor := 0
			for {
				key, value, next, ok := idx.Iterate(cursor)
				if !ok {
					break
				}
				fmt.Printf("%s => %s\n", hex.EncodeToString(key), hex.EncodeToString(value))
				n++
				if limit > 0 && n >= limit {
					break
				}
				cursor = next
			}
			return nil
		},
	}
}
