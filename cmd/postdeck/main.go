// Command postdeck is a local-first social media content manager.
package main

import "github.com/postdeck/postdeck/internal/cli"

func main() {
	cli.Execute()
}
