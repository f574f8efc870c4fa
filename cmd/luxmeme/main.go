// Command luxmeme writes the lux-box motif table as a MEME file into $LUX_BASE_DIR.
package main

import "os"

func main() {
	os.Exit(Execute())
}
