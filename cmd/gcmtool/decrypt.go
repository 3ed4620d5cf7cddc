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
	decKeyHex string
	decIVHex  string
	decAADHex string
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt hex ciphertext||tag from stdin, writing plaintext to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := hex.DecodeString(decKeyHex)
		if err != nil {
			return fmt.Errorf("decoding key: %w", err)
		}

		iv, err := hex.DecodeString(decIVHex)
		if err != nil {
			return fmt.Errorf("decoding iv: %w", err)
		}

		aad, err := hex.DecodeString(decAADHex)
		if err != nil {
			return fmt.Errorf("decoding aad: %w", err)
		}

		input, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}

		raw, err := hex.DecodeString(stripNewline(input))
		if err != nil {
			return fmt.Errorf("decoding ciphertext||tag: %w", err)
		}
		if len(raw) < aesgcm512.TagSize {
			return fmt.Errorf("input shorter than a tag (%d bytes)", aesgcm512.TagSize)
		}

		ciphertext := raw[:len(raw)-aesgcm512.TagSize]
		tag := raw[len(raw)-aesgcm512.TagSize:]

		ctx, err := aesgcm512.NewContext(key)
		if err != nil {
			return err
		}
		defer ctx.Close()

		slog.Debug("opening", "ciphertext_len", len(ciphertext), "aad_len", len(aad), "512bit", ctx.Is512())

		plaintext, err := ctx.Open(iv, aad, ciphertext, tag)
		if err != nil {
			return err
		}

		os.Stdout.Write(plaintext)
		return nil
	},
}

func stripNewline(b []byte) string {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return string(b)
}

func init() {
	decryptCmd.Flags().StringVar(&decKeyHex, "key", "", "hex-encoded key (16/24/32/64 bytes)")
	decryptCmd.Flags().StringVar(&decIVHex, "iv", "", "hex-encoded IV")
	decryptCmd.Flags().StringVar(&decAADHex, "aad", "", "hex-encoded additional authenticated data")
	decryptCmd.MarkFlagRequired("key")
	decryptCmd.MarkFlagRequired("iv")
}
