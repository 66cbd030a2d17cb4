// Package main hosts the sieve CLI.
//
// `sieve scan` lists the immediate subfolders of a media directory and
// reports folder names that normalize to the same title, then names that
// match as substrings once normalized. Configuration and logging are resolved
// once per invocation in commandContext. Nothing is renamed or moved; only
// `config init` writes a file.
package main
