package main

// Version is the release version of the bumpver CLI.
var Version = "1.0.0"
