// Package hillengine implements the Hill cipher, a polygraphic substitution
// cipher that enciphers blocks of n letters at a time by multiplying them
// with an invertible n x n key matrix over the integers modulo 26.
//
// # Text model
//
// Only the ASCII letters A-Z and a-z take part. Every other character,
// including spaces, digits, punctuation and non-ASCII letters, is dropped,
// because the block structure leaves no position to pass it through. The
// case of each retained letter is recorded and the letters are mapped to
// symbols A=0 ... Z=25. The symbol sequence is padded with 'X' (23) until
// its length is a multiple of n.
//
// Each block b is enciphered as the row vector b × K mod 26 and deciphered
// as b × K⁻¹ mod 26, where K⁻¹ = det(K)⁻¹ · adj(K) mod 26. The output
// letters get the recorded case back, position by position. When the
// output is longer than the recorded flags (the padded tail), the flags are
// reused cyclically from the start rather than defaulting to upper case.
//
// Decrypt removes trailing upper case 'X' letters from its result, which
// undoes the padding in the common case. It is a heuristic: a plain text
// that really ends in 'X' loses that letter, and padding that received a
// lower case flag is kept as 'x'.
//
// # Errors
//
// Construction is the only step that can fail. New returns an error that
// matches keymatrix.ErrInvalidKey (and can be unwrapped into a
// *keymatrix.InvalidKeyError carrying the determinant) when the key is not
// square, is smaller than 2 x 2, or has a determinant sharing a factor with
// 26. Encrypt and Decrypt never fail: input without letters produces an
// empty result.
//
// # Concurrency
//
// A HillEngine is immutable after construction and safe for concurrent
// use. Blocks are independent; WithParallelism lets large inputs be split
// across goroutines while keeping the block order.
//
// Example:
//
//	engine, err := hillengine.New([][]int{{11, 8}, {3, 7}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ct := engine.Encrypt("HELP") // "LGKL"
//	pt := engine.Decrypt(ct)     // "HELP"
//
// The Hill cipher is linear and falls to a known plain text attack; it is
// provided for teaching, not for confidentiality.
package hillengine
