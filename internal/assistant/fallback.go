package assistant

import (
	"strings"

	"golang.org/x/text/cases"
)

// offlineRule is one canned reply, used when its keyword appears in the prompt.
type offlineRule struct {
	keyword string
	reply   string
}

// offlineRules are checked in order and the first hit wins.
var offlineRules = []offlineRule{
	{keyword: "hello", reply: "Hello! How can I help you today?"},
	{keyword: "help", reply: "I'm here to assist you with various tasks including creating charts and analyzing data."},
	{keyword: "chart", reply: "I can help you create various types of charts. What data would you like to visualize?"},
	{keyword: "graph", reply: "I can generate graphs for your data. Please provide the data or describe what you'd like to visualize."},
}

const offlineDefaultReply = "Please connect to your preferred AI service for real-time queries."

// OfflineResponse answers a prompt from the canned reply table. It never
// touches the network and always returns a non-empty reply.
func OfflineResponse(prompt string) string {
	folded := cases.Fold().String(prompt)
	for _, rule := range offlineRules {
		if strings.Contains(folded, rule.keyword) {
			return rule.reply
		}
	}
	return offlineDefaultReply
}
