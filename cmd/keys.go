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
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bgallie/hill/cryptors/keymatrix"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errNoKey = errors.New("you must supply a key matrix")

// maxPromptedKeySize limits the key size accepted from the terminal.
const maxPromptedKeySize = 32

// loadKeys returns the key matrices to use.  They come from the --key flags,
// then the "key" setting (config file or HILL_KEY) and finally a prompt
// when stdin is a terminal.
func loadKeys(cmd *cobra.Command) ([][][]int, error) {
	if len(keyTexts) > 0 {
		keys := make([][][]int, 0, len(keyTexts))
		for _, kt := range keyTexts {
			rows, err := keymatrix.Parse(kt)
			if err != nil {
				return nil, fmt.Errorf("--key %q: %w", kt, err)
			}
			keys = append(keys, rows)
		}
		return keys, nil
	}

	if viper.IsSet("key") {
		rows, err := keyFromConfig(viper.Get("key"))
		if err != nil {
			return nil, fmt.Errorf("config key: %w", err)
		}
		return [][][]int{rows}, nil
	}

	if isTerminal(int(os.Stdin.Fd())) {
		rows, err := promptKey(stdin, cmd.ErrOrStderr())
		if err != nil {
			return nil, err
		}
		return [][][]int{rows}, nil
	}

	return nil, errNoKey
}

// keyFromConfig accepts the key either in its textual form ("11,8;3,7") or
// as a YAML list of rows.
func keyFromConfig(v interface{}) ([][]int, error) {
	if s, ok := v.(string); ok {
		return keymatrix.Parse(s)
	}

	rows, err := cast.ToSliceE(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keymatrix.ErrBadKeyFormat, err)
	}
	key := make([][]int, len(rows))
	for i, row := range rows {
		key[i], err = cast.ToIntSliceE(row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", keymatrix.ErrBadKeyFormat, i+1, err)
		}
	}
	return key, nil
}

type lineReader interface {
	ReadString(delim byte) (string, error)
}

func readLine(rdr lineReader) (string, error) {
	line, err := rdr.ReadString('\n')
	if err == io.EOF && len(line) > 0 {
		err = nil
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(line), err
}

// promptKey asks for the size of the key and then for each of its rows.
func promptKey(rdr lineReader, w io.Writer) ([][]int, error) {
	fmt.Fprint(w, "Enter the size of the key matrix (n for an n x n key): ")
	line, err := readLine(rdr)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > maxPromptedKeySize {
		return nil, fmt.Errorf("%w: bad key size %q (1 to %d)", keymatrix.ErrBadKeyFormat, line, maxPromptedKeySize)
	}

	fmt.Fprintf(w, "Enter the key matrix one row at a time (%d integers per row):\n", n)
	rows := make([][]int, 0, n)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(w, "Row %d: ", i)
		line, err = readLine(rdr)
		if err != nil {
			return nil, err
		}
		parsed, err := keymatrix.Parse(line)
		if err != nil {
			return nil, err
		}
		if len(parsed) != 1 || len(parsed[0]) != n {
			return nil, fmt.Errorf("%w: row %d needs exactly %d integers", keymatrix.ErrBadKeyFormat, i, n)
		}
		rows = append(rows, parsed[0])
	}
	return rows, nil
}
