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
	"math/rand"
	"time"

	"github.com/bgallie/hill/cryptors/keymatrix"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	keySize int
	seed    int64
	saveKey bool
)

// keygenCmd represents the keygen command
var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a random key matrix",
	Long: `Generate a random key matrix that is invertible modulo 26.

The key is printed in the form accepted by --key.  With --save it is also
written to the config file so later commands use it by default.`,
	Args: cobra.NoArgs,
	RunE: keygen,
}

func init() {
	rootCmd.AddCommand(keygenCmd)
	keygenCmd.Flags().IntVarP(&keySize, "size", "n", 2, "the key is an n x n matrix")
	keygenCmd.Flags().Int64Var(&seed, "seed", 0, "seed for the random source (0 seeds from the current time)")
	keygenCmd.Flags().BoolVar(&saveKey, "save", false, "save the key in the config file")
}

func keygen(cmd *cobra.Command, args []string) error {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	k, err := keymatrix.Generate(rand.New(rand.NewSource(s)), keySize)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), k)

	if !saveKey {
		return nil
	}
	viper.Set("key", k.String())
	return writeConfig(cmd)
}

// writeConfig writes the current settings, creating the config file when
// there is none yet.
func writeConfig(cmd *cobra.Command) error {
	err := viper.WriteConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = viper.SafeWriteConfig()
	}
	if err != nil {
		return fmt.Errorf("saving key: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Key saved to the config file.")
	return nil
}
