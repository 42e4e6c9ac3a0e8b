package main

import "github.com/AsthaPitambarwale/music-mood-dj/cmd"

func main() {
	cmd.Execute()
}
