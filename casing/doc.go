// Package casing converts identifiers between naming conventions.
//
// # Words
//
// An identifier is first split into words. Every rune that is neither a
// letter nor a number separates words, so "my_account", "my-account" and
// "my account" all yield the words "my" and "account". Inside a run of
// letters and numbers a new word starts
//
//   - after a lowercase rune followed by an uppercase rune ("myAccount"), and
//   - at the last rune of an uppercase run followed by a lowercase rune
//     ("HTTPServer" splits as "HTTP", "Server").
//
// Numbers belong to the word they appear in.
//
// # Conventions
//
//	casing.LowerCamel("My_Account") // "myAccount"
//	casing.UpperCamel("my_account") // "MyAccount"
//
// Both conversions share the same word splitting and are idempotent. A
// rendering such as "pointAB" (from "point_a_b") splits differently than the
// words it came from, so the conversions repeat until the output is stable:
// "point_a_b" becomes "pointAb".
package casing
