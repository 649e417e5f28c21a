// If you are AI: This file provides the built-in element catalog.
// Factories mirror common media elements closely enough to build realistic graphs.

package factory

const (
	capsAny      = "ANY"
	capsRawVideo = "video/x-raw"
	capsRawAudio = "audio/x-raw"
	capsH264     = "video/x-h264"
	capsMpegTS   = "video/mpegts"
	maxUint32    = 4294967295
	maxInt32     = 2147483647
)

// alwaysPad returns an always template.
func alwaysPad(name string, dir Direction, caps string) PadTemplate {
	return PadTemplate{Name: name, Direction: dir, Presence: PresenceAlways, Caps: caps}
}

// requestPad returns a request template.
func requestPad(name string, dir Direction, caps string) PadTemplate {
	return PadTemplate{Name: name, Direction: dir, Presence: PresenceRequest, Caps: caps}
}

// sometimesPad returns a sometimes template.
func sometimesPad(name string, dir Direction, caps string) PadTemplate {
	return PadTemplate{Name: name, Direction: dir, Presence: PresenceSometimes, Caps: caps}
}

// boolProp returns a bool property spec.
func boolProp(name, def string) PropertySpec {
	return PropertySpec{Name: name, Type: TypeBool, Default: def}
}

// enumProp returns an enum property spec whose default is the first choice.
func enumProp(name string, choices ...string) PropertySpec {
	return PropertySpec{Name: name, Type: TypeEnum, Default: choices[0], Choices: choices}
}

// Builtin returns a catalog preloaded with the built-in factories.
func Builtin() *Catalog {
	c := NewCatalog()
	for _, f := range builtinFactories() {
		// Built-in definitions are static; a failure here is a programming error.
		if err := c.Register(f); err != nil {
			panic(err)
		}
	}
	return c
}

// builtinFactories lists the built-in factory definitions.
func builtinFactories() []*Factory {
	return []*Factory{
		{Name: RootFactory, Description: "Top-level container", Container: true},
		{Name: "bin", Description: "Generic container", Container: true},
		{
			Name:        "fakesrc",
			Description: "Produces empty buffers",
			Templates:   []PadTemplate{alwaysPad("src", DirectionSrc, capsAny)},
			Properties: []PropertySpec{
				{Name: "num-buffers", Type: TypeInt, Default: "-1", Min: -1, Max: maxInt32},
				boolProp("is-live", "false"),
				enumProp("sizetype", "empty", "fixed", "random"),
			},
		},
		{
			Name:        "fakesink",
			Description: "Discards buffers",
			Templates:   []PadTemplate{alwaysPad("sink", DirectionSink, capsAny)},
			Properties:  []PropertySpec{boolProp("sync", "false"), boolProp("silent", "true")},
		},
		{
			Name:        "identity",
			Description: "Passes data through unchanged",
			Templates: []PadTemplate{
				alwaysPad("sink", DirectionSink, capsAny),
				alwaysPad("src", DirectionSrc, capsAny),
			},
			Properties: []PropertySpec{
				boolProp("silent", "true"),
				{Name: "drop-probability", Type: TypeFloat, Default: "0", Min: 0, Max: 1},
			},
		},
		{
			Name:        "queue",
			Description: "Decouples upstream and downstream threads",
			Templates: []PadTemplate{
				alwaysPad("sink", DirectionSink, capsAny),
				alwaysPad("src", DirectionSrc, capsAny),
			},
			Properties: []PropertySpec{
				{Name: "max-size-buffers", Type: TypeUint, Default: "200", Min: 0, Max: maxUint32},
				{Name: "max-size-time", Type: TypeUint64, Default: "1000000000"},
				enumProp("leaky", "no", "upstream", "downstream"),
			},
		},
		{
			Name:        "tee",
			Description: "Splits data to multiple pads",
			Templates: []PadTemplate{
				alwaysPad("sink", DirectionSink, capsAny),
				requestPad("src_%u", DirectionSrc, capsAny),
			},
			Properties: []PropertySpec{boolProp("allow-not-linked", "false")},
		},
		{
			Name:        "videotestsrc",
			Description: "Produces test video",
			Templates:   []PadTemplate{alwaysPad("src", DirectionSrc, capsRawVideo)},
			Properties: []PropertySpec{
				enumProp("pattern", "smpte", "snow", "black", "white", "red", "green", "blue", "ball"),
				boolProp("is-live", "false"),
				{Name: "num-buffers", Type: TypeInt, Default: "-1", Min: -1, Max: maxInt32},
			},
		},
		{
			Name:        "audiotestsrc",
			Description: "Produces test audio",
			Templates:   []PadTemplate{alwaysPad("src", DirectionSrc, capsRawAudio)},
			Properties: []PropertySpec{
				{Name: "freq", Type: TypeDouble, Default: "440", Min: 0, Max: 20000},
				{Name: "volume", Type: TypeDouble, Default: "0.8", Min: 0, Max: 1},
				enumProp("wave", "sine", "square", "saw", "triangle", "silence"),
				boolProp("is-live", "false"),
			},
		},
		{
			Name:        "videoconvert",
			Description: "Converts between video formats",
			Templates: []PadTemplate{
				alwaysPad("sink", DirectionSink, capsRawVideo),
				alwaysPad("src", DirectionSrc, capsRawVideo),
			},
		},
		{
			Name:        "audioconvert",
			Description: "Converts between audio formats",
			Templates: []PadTemplate{
				alwaysPad("sink", DirectionSink, capsRawAudio),
				alwaysPad("src", DirectionSrc, capsRawAudio),
			},
		},
		{
			Name:        "x264enc",
			Description: "H.264 video encoder",
			Templates: []PadTemplate{
				alwaysPad("sink", DirectionSink, capsRawVideo),
				alwaysPad("src", DirectionSrc, capsH264),
			},
			Properties: []PropertySpec{
				{Name: "bitrate", Type: TypeUint, Default: "2048", Min: 1, Max: 2048000},
				enumProp("speed-preset", "medium", "ultrafast", "superfast", "veryfast", "faster", "fast", "slow"),
				enumProp("tune", "none", "stillimage", "fastdecode", "zerolatency"),
			},
		},
		{
			Name:        "mpegtsmux",
			Description: "MPEG transport stream muxer",
			Templates: []PadTemplate{
				requestPad("sink_%d", DirectionSink, capsH264+";audio/mpeg"),
				alwaysPad("src", DirectionSrc, capsMpegTS),
			},
			Properties: []PropertySpec{{Name: "alignment", Type: TypeInt, Default: "-1", Min: -1, Max: 256}},
		},
		{
			Name:        "autovideosink",
			Description: "Displays video on the default output",
			Templates:   []PadTemplate{alwaysPad("sink", DirectionSink, capsRawVideo)},
			Properties:  []PropertySpec{boolProp("sync", "true")},
		},
		{
			Name:        "autoaudiosink",
			Description: "Plays audio on the default output",
			Templates:   []PadTemplate{alwaysPad("sink", DirectionSink, capsRawAudio)},
			Properties:  []PropertySpec{boolProp("sync", "true")},
		},
		{
			Name:        "filesrc",
			Description: "Reads data from a file",
			Templates:   []PadTemplate{alwaysPad("src", DirectionSrc, capsAny)},
			Properties:  []PropertySpec{{Name: "location", Type: TypeString}},
		},
		{
			Name:        "filesink",
			Description: "Writes data to a file",
			Templates:   []PadTemplate{alwaysPad("sink", DirectionSink, capsAny)},
			Properties: []PropertySpec{
				{Name: "location", Type: TypeString},
				boolProp("append", "false"),
			},
		},
		{
			Name:        "decodebin",
			Description: "Autoplugging decoder",
			Container:   true,
			Templates: []PadTemplate{
				alwaysPad("sink", DirectionSink, capsAny),
				sometimesPad("src_%u", DirectionSrc, capsAny),
			},
		},
	}
}
