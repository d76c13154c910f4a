// 7 Oct 2026

/*
Alninfo reads a multiple sequence alignment and reports on it.
It writes consensus sequences (majority vote, with and without gaps and,
for DNA, IUPAC ambiguity codes), then the information content of each
column, labelled by the residues of a representative sequence.

Given no explicit input path, it reads from standard input.
Given no output filename, it writes to standard output.
Sequences may be different lengths. Short ones just do not contribute
to the columns they do not reach. A comment containing weight=0.5 sets
the weight of a sequence for the information content, the PSSM and the
replacement counts. The consensus ignores weights.

Information content is relative to a background. By default it is
random, 0.25 for nucleotides and 0.05 for protein. Anything else has to
be given as a string or a file of lines like "A 0.3". Gaps never have
an expected frequency.

Usage:

	alninfo [flags] [input [output]]

The flags are:

	-a char
		ambiguous character, put in the consensus where there is no clear winner
	-b base
		base for logarithms, default 2 for bits
	-c
		frequency file holds counts, not frequencies
	-e A:0.3,C:0.2,...
		expected frequencies
	-f file
		read expected frequencies from a file
	-i residues
		residues to ignore
	-k pseudo
		pseudo count for the information content
	-m
		a column needs more than one residue to get a consensus
	-p
		also write a position specific score matrix
	-r reference
		representative sequence, given by a string which will be searched
		for in the comment lines of the sequences. The default is the first.
	-s
		also write replacement counts
	-t threshold
		fraction of a column the commonest residue needs for the consensus
	-time
		print out timing information

Defaults for -t, -a, -k and -b come from the environment variables
ALNINFO_THRESHOLD, ALNINFO_AMBIGUOUS, ALNINFO_PSEUDO and ALNINFO_LOGBASE
if they are set. Flags override them.
*/
package main
