package game

import (
	"log"

	"github.com/decker502/jobdeck/pkg/deck"
)

// LogDecisionSink 将滑动决定写入日志
// 右滑记为 Liked，左滑记为 Disliked
type LogDecisionSink struct {
	logger *log.Logger
}

// NewLogDecisionSink 创建日志接收器，logger 为 nil 时使用标准 logger
func NewLogDecisionSink(logger *log.Logger) *LogDecisionSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogDecisionSink{logger: logger}
}

// HandleDecision 实现 deck.DecisionSink
func (s *LogDecisionSink) HandleDecision(d deck.Decision) {
	verdict := "Liked"
	if d.Direction == deck.Left {
		verdict = "Disliked"
	}
	s.logger.Printf("[Decision] %s: %s (%s)", verdict, d.Item.Title, d.Item.ApplyURL)
}

// HistoryDecisionSink 在内存中记录决定，用于结束页统计
// 可以串接下一个接收器
type HistoryDecisionSink struct {
	next    deck.DecisionSink
	history []deck.Decision
}

// NewHistoryDecisionSink 创建历史接收器，next 可为 nil
func NewHistoryDecisionSink(next deck.DecisionSink) *HistoryDecisionSink {
	return &HistoryDecisionSink{next: next}
}

// HandleDecision 实现 deck.DecisionSink
func (s *HistoryDecisionSink) HandleDecision(d deck.Decision) {
	s.history = append(s.history, d)
	if s.next != nil {
		s.next.HandleDecision(d)
	}
}

// Counts 返回右滑与左滑的数量
func (s *HistoryDecisionSink) Counts() (liked, disliked int) {
	for _, d := range s.history {
		if d.Direction == deck.Right {
			liked++
		} else {
			disliked++
		}
	}
	return liked, disliked
}

// History 返回决定记录的副本
func (s *HistoryDecisionSink) History() []deck.Decision {
	out := make([]deck.Decision, len(s.history))
	copy(out, s.history)
	return out
}
