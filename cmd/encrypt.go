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
	"io"
	"os"

	"github.com/bgallie/hill/hillengine"
	"github.com/spf13/cobra"
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:     "encrypt [text...]",
	Aliases: []string{"encode", "enc"},
	Short:   "Encrypt plaintext using the Hill cipher",
	Long: `Encrypt plaintext using the Hill cipher.

The plaintext is taken from the command line arguments when there are any,
otherwise from the input file (stdin by default).`,
	RunE: encrypt,
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().BoolVarP(&useLines, "lines", "l", false, "split the ciphertext into lines")
}

func encrypt(cmd *cobra.Command, args []string) error {
	return runCipher(cmd, args, true)
}

// runCipher drives both directions: it builds the engine, reads the text,
// runs it through the engine and writes the result.
func runCipher(cmd *cobra.Command, args []string, encode bool) error {
	engine, err := newEngine(cmd)
	if err != nil {
		return err
	}

	fin, err := getInputFile(len(args) > 0)
	if err != nil {
		return err
	}
	defer closeFile(fin)

	prompt := "Enter the text to decrypt: "
	if encode {
		prompt = "Enter the text to encrypt: "
	}
	text, err := readText(cmd, fin, args, prompt)
	if err != nil {
		return err
	}

	fout, err := getOutputFile(encode, len(args) > 0)
	if err != nil {
		return err
	}

	var result string
	if encode {
		result = engine.Encrypt(text)
	} else {
		result = engine.Decrypt(text)
	}

	var w io.Writer = fout
	if fout == os.Stdout {
		w = cmd.OutOrStdout()
	}
	err = writeText(w, result, useLines)
	if cerr := closeFile(fout); err == nil {
		err = cerr
	}
	return err
}

func newEngine(cmd *cobra.Command) (*hillengine.HillEngine, error) {
	keys, err := loadKeys(cmd)
	if err != nil {
		return nil, err
	}
	return hillengine.NewProduct(keys, hillengine.WithParallelism(workers))
}
