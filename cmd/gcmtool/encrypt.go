package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	aesgcm512 "github.com/TheMapleseed/AES-GCM-512"
)

var (
	encKeyHex string
	encIVHex  string
	encAADHex string
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt stdin, writing hex ciphertext||tag to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := hex.DecodeString(encKeyHex)
		if err != nil {
			return fmt.Errorf("decoding key: %w", err)
		}

		iv, err := hex.DecodeString(encIVHex)
		if err != nil {
			return fmt.Errorf("decoding iv: %w", err)
		}

		aad, err := hex.DecodeString(encAADHex)
		if err != nil {
			return fmt.Errorf("decoding aad: %w", err)
		}

		ctx, err := aesgcm512.NewContext(key)
		if err != nil {
			return err
		}
		defer ctx.Close()

		plaintext, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}

		slog.Debug("sealing", "plaintext_len", len(plaintext), "aad_len", len(aad), "512bit", ctx.Is512())

		ciphertext, tag, err := ctx.Seal(iv, aad, plaintext)
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, hex.EncodeToString(append(ciphertext, tag...)))
		return nil
	},
}

func init() {
	encryptCmd.Flags().StringVar(&encKeyHex, "key", "", "hex-encoded key (16/24/32/64 bytes)")
	encryptCmd.Flags().StringVar(&encIVHex, "iv", "", "hex-encoded IV")
	encryptCmd.Flags().StringVar(&encAADHex, "aad", "", "hex-encoded additional authenticated data")
	encryptCmd.MarkFlagRequired("key")
	encryptCmd.MarkFlagRequired("iv")
}
