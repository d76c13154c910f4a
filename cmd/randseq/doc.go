// 31 July 2020

/*
Randseq is for making random alignments for testing the code.
Usage:

	randseq [options] fname nseq length

will generate nseq sequences of length length and write them to fname.
A file name of "-" means standard output.

Flags:

	-g
		no gaps in the output sequences
	-p
		protein rather than DNA
	-r
		random number seed
	-v
		sequences have different lengths. A random amount, up to half,
		is chopped off the end of each one.
	-w
		give each sequence a random weight, written as weight=x in its comment

The content is not so important. The only things that matter for
testing are gaps, lengths and weights.
*/
package main
