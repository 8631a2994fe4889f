package progrock

import (
	"bytes"
	"strings"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/nbuild/internal/core/ports"
	"go.trai.ch/nbuild/internal/ui/style"
)

// Summary is a progrock.Writer that reports vertex output and completion
// through a logger, one line per event.
type Summary struct {
	logger ports.Logger

	mu       sync.Mutex
	hidden   map[string]bool
	reported map[string]bool
	partial  map[logKey]*bytes.Buffer
}

type logKey struct {
	vertex string
	stream progrock.LogStream
}

var _ progrock.Writer = (*Summary)(nil)

// NewSummary creates a new Summary writing to logger.
func NewSummary(logger ports.Logger) *Summary {
	return &Summary{
		logger:   logger,
		hidden:   make(map[string]bool),
		reported: make(map[string]bool),
		partial:  make(map[logKey]*bytes.Buffer),
	}
}

// Hide suppresses the completion line of the vertex with the given id.
// Its output is still forwarded.
func (s *Summary) Hide(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hidden[id] = true
}

// WriteStatus processes one update from the recorder.
func (s *Summary) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range update.Logs {
		s.processLog(l)
	}
	for _, v := range update.Vertexes {
		s.processVertex(v)
	}
	return nil
}

// Close flushes pending partial lines.
func (s *Summary) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.partial {
		s.flush(key)
	}
	return nil
}

func (s *Summary) processLog(l *progrock.VertexLog) {
	key := logKey{vertex: l.Vertex, stream: l.Stream}
	buf, ok := s.partial[key]
	if !ok {
		buf = &bytes.Buffer{}
		s.partial[key] = buf
	}
	buf.Write(l.Data)

	for {
		line, err := buf.ReadString('\n')
		if err != nil {
			// Keep the incomplete tail for the next write.
			buf.Reset()
			buf.WriteString(line)
			return
		}
		s.emit(key.stream, strings.TrimSuffix(line, "\n"))
	}
}

func (s *Summary) processVertex(v *progrock.Vertex) {
	if (v.Completed == nil && !v.Cached) || s.reported[v.Id] {
		return
	}
	s.reported[v.Id] = true

	for key := range s.partial {
		if key.vertex == v.Id {
			s.flush(key)
		}
	}

	if s.hidden[v.Id] {
		return
	}

	switch {
	case v.Error != nil:
		s.logger.Warn(style.Cross + " " + v.Name + ": " + *v.Error)
	case v.Cached:
		s.logger.Info(style.Check + " " + v.Name + " (cached)")
	default:
		s.logger.Info(style.Check + " " + v.Name + elapsed(v))
	}
}

func (s *Summary) flush(key logKey) {
	buf := s.partial[key]
	delete(s.partial, key)
	if buf != nil && buf.Len() > 0 {
		s.emit(key.stream, buf.String())
	}
}

func (s *Summary) emit(stream progrock.LogStream, line string) {
	if stream == progrock.LogStream_STDERR {
		s.logger.Warn(line)
		return
	}
	s.logger.Info(line)
}

func elapsed(v *progrock.Vertex) string {
	if v.Started == nil {
		return ""
	}
	d := v.Completed.AsTime().Sub(v.Started.AsTime())
	if d < time.Millisecond {
		return ""
	}
	return " (" + d.Round(time.Millisecond).String() + ")"
}
