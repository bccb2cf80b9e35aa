package mutualinfo

import "io"

// RunStream loads unigram counts from unigramsFile and scores the
// collocation stream from r, writing results to w.
func RunStream(unigramsFile, r io.Reader, w io.Writer, opt Options) error {
	unigrams, total, err := LoadUnigrams(unigramsFile)
	if err != nil {
		return err
	}
	return Score(r, w, unigrams, total, opt)
}
