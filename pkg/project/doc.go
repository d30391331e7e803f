// Package project reads and writes webshell project files.
//
// A project file is the on-disk form of a config.Configuration, written in
// YAML or JSON:
//
//	packageIdentifier: com.example.app
//	contentMode: remote
//	remoteUrl: https://example.org
//	headers:
//	  X-Token: abc
//	javascriptEnabled: true
//	splash:
//	  assetPath: splash.png
//	  durationMs: 1500
//
// Files are checked against an embedded schema before decoding, header order
// is kept as written, and omitted values fall back to the same defaults the
// interactive wizard offers (JavaScript and DOM storage on, 2000 ms splash).
package project
