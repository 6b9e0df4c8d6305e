// Command dsplab runs the introductory DSP examples: elementary sequences,
// sampled signals, and echo generation and removal on an audio clip.
//
// Usage:
//
//	dsplab seq impulse --start -10 --end 10 --plot impulse.png
//	dsplab signal chirp --freq 100 --f1 2000 --duration 1 --out chirp.txt
//	dsplab echo roundtrip --input clip.txt --delay 4000 --alpha 0.5 --wav out
//	dsplab version
package main

func main() {
	Execute()
}
