// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

package voicevoxcore

import "encoding/json"

// StyleMeta is one speaking style of a speaker.
type StyleMeta struct {
	Name string `json:"name"`
	ID   uint32 `json:"id"`
	Type string `json:"type,omitempty"`
}

// SpeakerMeta is the metadata of one speaker in a voice model.
type SpeakerMeta struct {
	Name        string      `json:"name"`
	Styles      []StyleMeta `json:"styles"`
	SpeakerUUID string      `json:"speaker_uuid"`
	Version     string      `json:"version"`
}

// ParseMetas decodes the raw metas JSON produced by VoiceModelFile.Metas
// or Synthesizer.Metas. The binding itself transports metas as opaque
// JSON; this helper sits on top and never between the native call and the
// raw bytes.
func ParseMetas(raw json.RawMessage) ([]SpeakerMeta, error) {
	var metas []SpeakerMeta
	if err := json.Unmarshal(raw, &metas); err != nil {
		return nil, err
	}
	return metas, nil
}
