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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bgallie/filters/lines"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	cfgFile        string
	keyTexts       []string
	inputFileName  string
	outputFileName string
	workers        int
	useLines       bool
	GitCommit      string = "not set"
	BuildDate      string = "not set"
	Version        string = "dev"
)

const (
	hillSuffix = ".hill"
)

var (
	// stdin is shared by the key prompt and the input reader so that
	// neither loses data buffered by the other.
	stdin      = bufio.NewReader(os.Stdin)
	isTerminal = term.IsTerminal
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hill",
	Short: "A Hill cipher for text",
	Long: `hill encrypts and decrypts text with the Hill cipher, a polygraphic substitution
cipher that multiplies blocks of letters by an invertible key matrix modulo 26.

Only the letters A-Z and a-z are enciphered; everything else is dropped. The
case of each letter is kept and the last block is padded with 'X'.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.SetVersionTemplate(fmt.Sprintf("hill version %s (commit %s, built %s)\n", Version, GitCommit, BuildDate))
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hill.yaml)")
	rootCmd.PersistentFlags().StringArrayVarP(&keyTexts, "key", "k", nil, `key matrix, rows separated by ';' and entries by ',' (eg. "11,8;3,7").
Repeat the flag to encipher with several keys of the same size in turn.
Without it the key is taken from the config file, the HILL_KEY environment
variable or, on a terminal, prompted for.`)
	rootCmd.PersistentFlags().StringVarP(&inputFileName, "inputFile", "i", "-", "Name of the file to encrypt/decrypt.")
	rootCmd.PersistentFlags().StringVarP(&outputFileName, "outputFile", "o", "", "Name of the file containing the encrypted/decrypted text.")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 1, "number of goroutines used to encipher large inputs")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".hill" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hill")
	}

	viper.SetEnvPrefix("hill")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}
}

/*
	getInputFile returns the file holding the text to encrypt/decrypt.  If an
	input file name was given, that file is opened, otherwise stdin is used.
	When the text comes from the command line no input file is opened.
*/
func getInputFile(textFromArgs bool) (*os.File, error) {
	if textFromArgs {
		return nil, nil
	}
	if len(inputFileName) > 0 && inputFileName != "-" {
		return os.Open(inputFileName)
	}
	return os.Stdin, nil
}

/*
	getOutputFile returns the file to write the encrypted/decrypted text to.
	An output file name wins; otherwise encrypting "x" writes "x.hill",
	decrypting "x.hill" writes "x" and everything else goes to stdout.
	It is only called once the input has been read, so a failed read does
	not leave an empty output file behind.
*/
func getOutputFile(encode, textFromArgs bool) (*os.File, error) {
	switch {
	case outputFileName == "-":
		return os.Stdout, nil
	case len(outputFileName) > 0:
		return os.Create(outputFileName)
	case textFromArgs || inputFileName == "-" || len(inputFileName) == 0:
		return os.Stdout, nil
	case encode:
		return os.Create(inputFileName + hillSuffix)
	case strings.HasSuffix(inputFileName, hillSuffix):
		return os.Create(strings.TrimSuffix(inputFileName, hillSuffix))
	}
	return os.Stdout, nil
}

// closeFile closes f unless it is one of the standard streams.
func closeFile(f *os.File) error {
	if f == nil || f == os.Stdin || f == os.Stdout {
		return nil
	}
	return f.Close()
}

// readText returns the text to process: the command line arguments when
// there are any, a single line when reading from a terminal, and the whole
// input otherwise. Line breaks need no joining since they are not letters.
func readText(cmd *cobra.Command, fin *os.File, args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	var rdr io.Reader = fin
	if fin == os.Stdin {
		if isTerminal(int(os.Stdin.Fd())) {
			fmt.Fprint(cmd.ErrOrStderr(), prompt)
			line, err := stdin.ReadString('\n')
			if err != nil && err != io.EOF {
				return "", err
			}
			return line, nil
		}
		rdr = stdin
	}

	b, err := io.ReadAll(rdr)
	return string(b), err
}

// writeText writes text followed by a new line, or split into lines.
func writeText(fout io.Writer, text string, split bool) error {
	if split {
		_, err := io.Copy(fout, lines.SplitToLines(strings.NewReader(text)))
		return err
	}
	_, err := fmt.Fprintln(fout, text)
	return err
}
