// Package token provides logical-line tokenization for the XResources
// file format.
//
// [Tokenize] is a function for tokenizing bytes.
//
// [Scanner] provides the same tokenization one line at a time, so large
// resource files need not be materialized as a token slice before
// parsing begins.
package token
