package editor

import "fmt"

// DemoMiu is the surface coefficient of every demo segment.
const DemoMiu = 0.1

// demoRoad is a climbing straight followed by a run of banked and pitched
// corners. Each entry continues from the end of the previous one.
var demoRoad = []Input{
	{Width: 10, Length: 30, Pitch: -20, Roll: 20},
	{Width: 10, Length: 20},
	{Width: 10, Roll: 30, Angle: 30, Radius: 60},
	{Width: 10, Pitch: 20, Angle: -30, Radius: 60},
	{Width: 10, Roll: -20, Angle: 40, Radius: 60},
	{Width: 20, Angle: 60, Radius: 100},
	{Width: 10, Angle: -70, Radius: 100},
}

// BuildDemo replaces the road with the seven-segment sample track.
func (e *Editor) BuildDemo() error {
	e.Clear()
	for i, in := range demoRoad {
		in.Miu = DemoMiu
		if _, err := e.AddSegment(in); err != nil {
			return fmt.Errorf("demo segment %d: %w", i, err)
		}
	}
	e.log.Info("demo road built")
	return nil
}

// DemoSegmentCount is the number of segments BuildDemo adds.
func DemoSegmentCount() int { return len(demoRoad) }
