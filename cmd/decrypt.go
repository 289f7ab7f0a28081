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
	"github.com/spf13/cobra"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:     "decrypt [text...]",
	Aliases: []string{"decode", "dec"},
	Short:   "Decrypt ciphertext using the Hill cipher",
	Long: `Decrypt ciphertext using the Hill cipher.

Trailing upper case 'X' letters are removed from the recovered plaintext
since they are taken to be padding.  Line-split ciphertext (see encrypt -l)
is read as is, since everything but letters is ignored.`,
	RunE: decrypt,
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	decryptCmd.Flags().BoolVarP(&useLines, "lines", "l", false, "split the recovered plaintext into lines")
}

func decrypt(cmd *cobra.Command, args []string) error {
	return runCipher(cmd, args, false)
}
