// Package mp4probe reads the media duration from MP4 files.
package mp4probe

import (
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/zoomline/pkg/ports"
)

// Probe implements ports.DurationProbe by parsing the MP4 movie header.
type Probe struct{}

// New creates a new Probe.
func New() *Probe {
	return &Probe{}
}

// ProbeDuration returns the duration of an MP4 file in seconds.
func (p *Probe) ProbeDuration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return p.ProbeDurationFromReader(f)
}

// ProbeDurationFromReader returns the duration from an io.ReadSeeker.
// The mvhd box carries the presentation duration in movie timescale
// units. A fragmented file usually leaves the mvhd duration at zero,
// so we fall back to summing the sample durations of the video track
// across all fragments.
func (p *Probe) ProbeDurationFromReader(reader io.ReadSeeker) (float64, error) {
	mp4File, err := mp4.DecodeFile(reader)
	if err != nil {
		return 0, fmt.Errorf("decode mp4: %w", err)
	}

	moov := mp4File.Moov
	if moov == nil && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil {
		return 0, fmt.Errorf("no movie box found")
	}

	if moov.Mvhd != nil && moov.Mvhd.Timescale > 0 && moov.Mvhd.Duration > 0 {
		return float64(moov.Mvhd.Duration) / float64(moov.Mvhd.Timescale), nil
	}

	if !mp4File.IsFragmented() {
		return 0, fmt.Errorf("no duration in movie header")
	}

	return fragmentedDuration(mp4File, moov)
}

// fragmentedDuration sums the video track's sample durations across
// all fragments.
func fragmentedDuration(mp4File *mp4.File, moov *mp4.MoovBox) (float64, error) {
	// Find video track, its timescale, and its trex
	var videoTrackID uint32
	var timescale uint32
	for _, trak := range moov.Traks {
		if trak.Mdia != nil && trak.Mdia.Hdlr != nil && trak.Mdia.Hdlr.HandlerType == "vide" {
			videoTrackID = trak.Tkhd.TrackID
			if trak.Mdia.Mdhd != nil {
				timescale = trak.Mdia.Mdhd.Timescale
			}
			break
		}
	}
	if videoTrackID == 0 {
		return 0, fmt.Errorf("no video track found")
	}
	if timescale == 0 {
		return 0, fmt.Errorf("video track has no timescale")
	}

	var trex *mp4.TrexBox
	if moov.Mvex != nil {
		for _, t := range moov.Mvex.Trexs {
			if t.TrackID == videoTrackID {
				trex = t
				break
			}
		}
	}

	var totalUnits uint64
	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}
			for _, traf := range frag.Moof.Trafs {
				if traf.Tfhd.TrackID != videoTrackID {
					continue
				}
				samples, err := frag.GetFullSamples(trex)
				if err != nil {
					return 0, fmt.Errorf("get samples: %w", err)
				}
				for _, sample := range samples {
					totalUnits += uint64(sample.Dur)
				}
			}
		}
	}
	if totalUnits == 0 {
		return 0, fmt.Errorf("no duration information in file")
	}
	return float64(totalUnits) / float64(timescale), nil
}

// Ensure Probe implements ports.DurationProbe
var _ ports.DurationProbe = (*Probe)(nil)
