package wordlist

import _ "embed"

//go:embed subdomains.txt
var embeddedWordlist string
