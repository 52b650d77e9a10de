// Package document provides upstream sources that feed the tokenizing
// engine: plain text, HTML, and Markdown. Each source implements
// tok.Document by exposing a pull Reader; markup-aware sources interleave
// raw text fragments with opaque Format tokens the engine passes through.
package document
