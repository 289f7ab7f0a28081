/*
Copyright © 2025 Billy G. Allie <bill.allie@defiant.mug.org>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/bgallie/hill/cryptors"
	"github.com/bgallie/hill/cryptors/keymatrix"
	"github.com/spf13/cobra"
)

// keyCmd represents the key command
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Validate a key matrix and show its inverse",
	Long: `Validate the key matrix (or matrices) and print the determinant, its
inverse modulo 26 and the decryption matrix.`,
	Args: cobra.NoArgs,
	RunE: showKeys,
}

func init() {
	rootCmd.AddCommand(keyCmd)
}

func showKeys(cmd *cobra.Command, args []string) error {
	keys, err := loadKeys(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, rows := range keys {
		if i > 0 {
			fmt.Fprintln(out)
		}
		k, err := keymatrix.New(rows)
		if err != nil {
			if len(keys) > 1 {
				return fmt.Errorf("key %d: %w", i+1, err)
			}
			return err
		}
		printKey(out, k)
	}
	return nil
}

func printKey(w io.Writer, k *keymatrix.KeyMatrix) {
	fmt.Fprintf(w, "Key:          %s\n", k)
	fmt.Fprintf(w, "Size:         %dx%d\n", k.Size(), k.Size())
	fmt.Fprintf(w, "Determinant:  %s (%d mod %d)\n", k.Determinant(), k.Residue(), cryptors.Modulus)
	fmt.Fprintf(w, "Det inverse:  %d\n", k.DetInverse())
	fmt.Fprintf(w, "Inverse key:  %s\n", k.Inverse())
}
