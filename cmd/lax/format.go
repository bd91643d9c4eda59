package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsimmons/lax/pkg/config"
	"github.com/jsimmons/lax/pkg/token"
)

// tokenJSON is the wire shape of one token. Text and Value appear only
// on the literal categories that carry them.
type tokenJSON struct {
	Type   string   `json:"type"`
	Lexeme string   `json:"lexeme"`
	Text   *string  `json:"text,omitempty"`
	Value  *float64 `json:"value,omitempty"`
	Line   int      `json:"line"`
}

// writeTokens renders a token sequence in the given format
func writeTokens(w io.Writer, tokens []token.Token, format string) error {
	switch format {
	case config.FormatText:
		for _, tok := range tokens {
			if _, err := fmt.Fprintln(w, tok); err != nil {
				return err
			}
		}
		return nil

	case config.FormatJSON:
		out := make([]tokenJSON, 0, len(tokens))
		for _, tok := range tokens {
			j := tokenJSON{
				Type:   tok.Type.String(),
				Lexeme: string(tok.Lexeme),
				Line:   tok.Line,
			}
			switch tok.Type {
			case token.StringLit:
				text := string(tok.Text)
				j.Text = &text
			case token.Number:
				value := tok.Value
				j.Value = &value
			}
			out = append(out, j)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	default:
		return fmt.Errorf("unknown token format: %s", format)
	}
}
