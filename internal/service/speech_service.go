package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kemetlearn/kemet_service/internal/client"
	"github.com/kemetlearn/kemet_service/internal/similarity"
	"github.com/kemetlearn/kemet_service/internal/store"
)

// Text of at most this many whitespace-delimited tokens is eligible for a
// dictionary audio lookup; anything longer goes straight to synthesis,
// because the lookup API is a word/phrase dictionary, not a sentence corpus.
const shortPhraseMaxTokens = 4

const voicePrefsKey = "voicePrefs"

// Playback rate and pitch bounds.
const (
	minRate  = 0.5
	maxRate  = 2.0
	minPitch = 0.0
	maxPitch = 2.0
)

// PlaybackState is the state of the single shared audio stream.
type PlaybackState int

const (
	StateIdle PlaybackState = iota
	StateLoading
	StatePlaying
)

// String returns the lowercase state name.
func (s PlaybackState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	default:
		return "idle"
	}
}

// Audio source kinds, in fallback order.
const (
	SourceDirect     = "direct"
	SourceCache      = "cache"
	SourceDictionary = "dictionary"
	SourceTTS        = "tts"
	SourceSynth      = "synth"
)

// Resolution describes where the audio for a piece of text comes from.
// When Synthetic is true there is no URL and the platform's built-in voice
// engine should render the text.
type Resolution struct {
	Text      string  `json:"text"`
	URL       string  `json:"url,omitempty"`
	Source    string  `json:"source"`
	Synthetic bool    `json:"synthetic"`
	Rate      float64 `json:"rate"`
	Pitch     float64 `json:"pitch"`
}

// ResolveRequest asks for an audio rendering of Text. A pre-supplied
// AudioURL short-circuits all lookups.
type ResolveRequest struct {
	Text     string `json:"text"`
	AudioURL string `json:"audio_url,omitempty"`
}

// VoicePrefs are the user-adjustable playback settings, persisted across
// sessions through the key-value store.
type VoicePrefs struct {
	PreferredVoice string  `json:"preferred_voice,omitempty"`
	Rate           float64 `json:"rate"`
	Pitch          float64 `json:"pitch"`
	Accent         string  `json:"accent,omitempty"`
}

// PlaybackEvent notifies subscribers of FSM transitions.
type PlaybackEvent struct {
	State      PlaybackState `json:"-"`
	StateName  string        `json:"state"`
	Text       string        `json:"text,omitempty"`
	Resolution *Resolution   `json:"resolution,omitempty"`
}

// DictionaryLookup is the phonetic-audio lookup capability.
type DictionaryLookup interface {
	Lookup(ctx context.Context, text string) ([]client.DictionaryEntry, error)
}

// TTSBackend resolves text to a hosted audio URL. Implementations are
// selected by configuration; a nil backend skips the step entirely.
type TTSBackend interface {
	ResolveAudio(ctx context.Context, text string) (string, error)
}

// SpeechService is the single shared speech manager: it resolves text to an
// audio source through the fallback chain (direct URL, cache, dictionary
// lookup, TTS backend, synthetic speech) and runs the playback state
// machine Idle -> Loading -> Playing -> Idle. At most one stream is active;
// starting a new one cancels the previous, and requesting the text that is
// already playing toggles it off.
type SpeechService struct {
	log  zerolog.Logger
	dict DictionaryLookup
	tts  TTSBackend
	kv   store.KV

	mu         sync.Mutex
	state      PlaybackState
	currentKey string
	generation uint64
	cache      map[string]string
	prefs      VoicePrefs
	subs       map[int]chan PlaybackEvent
	nextSubID  int
}

// NewSpeechService creates the speech manager. dict and tts may be nil, in
// which case those fallback steps are skipped. Persisted voice preferences
// are loaded from kv.
func NewSpeechService(log zerolog.Logger, dict DictionaryLookup, tts TTSBackend, kv store.KV) *SpeechService {
	s := &SpeechService{
		log:   log,
		dict:  dict,
		tts:   tts,
		kv:    kv,
		state: StateIdle,
		cache: make(map[string]string),
		prefs: VoicePrefs{Rate: 0.9, Pitch: 1.0},
		subs:  make(map[int]chan PlaybackEvent),
	}
	s.loadPrefs()
	return s
}

func (s *SpeechService) loadPrefs() {
	if s.kv == nil {
		return
	}
	raw, err := s.kv.Get(context.Background(), voicePrefsKey)
	if err != nil {
		return
	}
	var prefs VoicePrefs
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		s.log.Warn().Err(err).Msg("Discarding malformed voice prefs")
		return
	}
	s.prefs = clampPrefs(prefs)
}

func clampPrefs(p VoicePrefs) VoicePrefs {
	if p.Rate < minRate {
		p.Rate = minRate
	}
	if p.Rate > maxRate {
		p.Rate = maxRate
	}
	if p.Pitch < minPitch {
		p.Pitch = minPitch
	}
	if p.Pitch > maxPitch {
		p.Pitch = maxPitch
	}
	return p
}

// Prefs returns the current voice preferences.
func (s *SpeechService) Prefs() VoicePrefs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// SetPrefs clamps, applies and persists voice preferences.
func (s *SpeechService) SetPrefs(ctx context.Context, prefs VoicePrefs) (VoicePrefs, error) {
	s.mu.Lock()
	s.prefs = clampPrefs(prefs)
	applied := s.prefs
	s.mu.Unlock()

	if s.kv != nil {
		data, err := json.Marshal(applied)
		if err == nil {
			err = s.kv.Set(ctx, voicePrefsKey, string(data))
		}
		if err != nil {
			// Preferences still apply for this session.
			s.log.Error().Err(err).Msg("Failed to persist voice prefs")
		}
	}

	return applied, nil
}

// cacheKey normalizes text and appends the accent selection so that accent
// switches do not reuse each other's lookups.
func (s *SpeechService) cacheKey(text, accent string) string {
	key := similarity.Normalize(text)
	if accent != "" {
		key += "|" + accent
	}
	return key
}

// Resolve runs the fallback chain for req and returns the chosen audio
// source. It never returns an error for lookup failures; those degrade to
// the synthetic fallback and are only logged.
func (s *SpeechService) Resolve(ctx context.Context, req ResolveRequest) *Resolution {
	s.mu.Lock()
	prefs := s.prefs
	s.mu.Unlock()

	res := &Resolution{
		Text:  req.Text,
		Rate:  prefs.Rate,
		Pitch: prefs.Pitch,
	}

	// A pre-supplied URL is played as-is, no lookup.
	if req.AudioURL != "" {
		res.URL = req.AudioURL
		res.Source = SourceDirect
		return res
	}

	clean := similarity.Normalize(req.Text)
	if len(strings.Fields(clean)) > shortPhraseMaxTokens {
		res.Source = SourceSynth
		res.Synthetic = true
		return res
	}

	key := s.cacheKey(req.Text, prefs.Accent)

	s.mu.Lock()
	cached, ok := s.cache[key]
	s.mu.Unlock()
	if ok {
		res.URL = cached
		res.Source = SourceCache
		return res
	}

	if s.dict != nil {
		entries, err := s.dict.Lookup(ctx, clean)
		if err != nil {
			s.log.Warn().Err(err).Str("text", clean).Msg("Dictionary lookup failed")
		} else if url := client.FindAudioURL(entries); url != "" {
			s.mu.Lock()
			s.cache[key] = url
			s.mu.Unlock()

			res.URL = url
			res.Source = SourceDictionary
			return res
		}
	}

	if s.tts != nil {
		url, err := s.tts.ResolveAudio(ctx, req.Text)
		if err != nil {
			s.log.Warn().Err(err).Str("text", clean).Msg("TTS backend failed")
		} else if url != "" {
			s.mu.Lock()
			s.cache[key] = url
			s.mu.Unlock()

			res.URL = url
			res.Source = SourceTTS
			return res
		}
	}

	res.Source = SourceSynth
	res.Synthetic = true
	return res
}

// Speak drives the playback FSM for req. If the same content is already
// playing, it stops playback and returns nil (toggle). Otherwise any
// current stream is cancelled and a new one started: Loading while the
// fallback chain runs, then Playing with the resolution. The caller (or
// the websocket session) signals completion via PlaybackDone.
func (s *SpeechService) Speak(ctx context.Context, req ResolveRequest) *Resolution {
	s.mu.Lock()
	prefs := s.prefs
	key := s.cacheKey(req.Text, prefs.Accent)

	if s.state != StateIdle && s.currentKey == key {
		// Toggle: same content requested while active.
		s.toIdleLocked()
		s.mu.Unlock()
		return nil
	}

	// Cancel whatever is active and claim the stream.
	s.generation++
	gen := s.generation
	s.currentKey = key
	s.setStateLocked(StateLoading, req.Text, nil)
	s.mu.Unlock()

	res := s.Resolve(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		// Superseded or stopped while resolving.
		return nil
	}
	s.setStateLocked(StatePlaying, req.Text, res)
	return res
}

// Stop cancels the active stream, transitioning to Idle from any state.
func (s *SpeechService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateIdle {
		return
	}
	s.toIdleLocked()
}

// PlaybackDone reports that the active stream finished naturally.
func (s *SpeechService) PlaybackDone() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePlaying {
		return
	}
	s.toIdleLocked()
}

// IsSpeaking reports whether a stream is playing.
func (s *SpeechService) IsSpeaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StatePlaying
}

// IsLoading reports whether an external lookup is in flight.
func (s *SpeechService) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateLoading
}

// State returns the current FSM state.
func (s *SpeechService) State() PlaybackState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers for playback events. The returned cancel func must be
// called to release the subscription.
func (s *SpeechService) Subscribe() (<-chan PlaybackEvent, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan PlaybackEvent, 16)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (s *SpeechService) toIdleLocked() {
	s.generation++
	s.currentKey = ""
	s.setStateLocked(StateIdle, "", nil)
}

func (s *SpeechService) setStateLocked(state PlaybackState, text string, res *Resolution) {
	s.state = state
	event := PlaybackEvent{
		State:      state,
		StateName:  state.String(),
		Text:       text,
		Resolution: res,
	}
	for _, ch := range s.subs {
		select {
		case ch <- event:
		default:
			// Slow subscriber; drop rather than block the FSM.
		}
	}
}
