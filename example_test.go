package anlz_test

import (
	"errors"
	"fmt"

	"github.com/simonhull/anlz"
	"github.com/simonhull/anlz/internal/anlztest"
)

func ExampleLoadBuffer() {
	data := anlztest.New().
		BeatGrid(anlz.Beat{Number: 1, Tempo: 12800, Time: 38}, anlz.Beat{Number: 2, Tempo: 12800, Time: 507}).
		Preview().
		CueList(anlz.CueListHotCue, anlz.CuePoint{HotCue: 1, Type: anlz.CueTypeSingle, Time: 38}).
		Bytes()

	db, err := anlz.LoadBuffer(anlz.ProfileDAT, data)
	if err != nil {
		fmt.Println(err)
		return
	}

	beats, _ := db.BeatGrid()
	fmt.Printf("%d beats at %.2f BPM\n", len(beats), beats[0].BPM())

	hot, _ := db.HotCues()
	fmt.Printf("hot cue %s at %s\n", hot[0].HotCueLabel(), hot[0].Offset())

	_, err = db.MemoryCues()
	fmt.Println(errors.Is(err, anlz.ErrMissingField), err)

	// Output:
	// 2 beats at 128.00 BPM
	// hot cue A at 38ms
	// true anlz: no memory cue points found
}
