package summarize

import (
	"context"
	"strings"
	"time"
)

// CannedSummarizer returns deterministic summaries for fully offline
// operation. It selects by keywords in the content's Title line, falling
// back to a generic digest, and simulates model latency.
type CannedSummarizer struct {
	Latency time.Duration
}

func NewCannedSummarizer() *CannedSummarizer {
	return &CannedSummarizer{Latency: 2 * time.Second}
}

func (s *CannedSummarizer) SummarizeContent(ctx context.Context, content string) (string, error) {
	if err := checkLength(Sanitize(content)); err != nil {
		return "", err
	}

	if s.Latency > 0 {
		t := time.NewTimer(s.Latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-t.C:
		}
	}

	title := titleLine(content)
	for _, entry := range cannedSummaries {
		if strings.Contains(title, entry.keyword) {
			return entry.summary, nil
		}
	}
	return genericSummary, nil
}

// titleLine extracts the value of the "Title:" line from a content block,
// matching the shape built by the orchestrator.
func titleLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(line), "Title:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

const genericSummary = `This episode provides valuable insights into the topic discussed. The content covers important aspects and offers practical takeaways for listeners interested in this subject matter. The discussion is well-structured and provides both theoretical knowledge and practical applications.`

var cannedSummaries = []struct {
	keyword string
	summary string
}{
	{
		keyword: "AI",
		summary: `This episode explores the cutting-edge developments in artificial intelligence and their transformative impact on technology. Key topics covered include:

• Machine Learning Advancements: Discussion of recent breakthroughs in neural networks and deep learning algorithms
• AI Applications: Real-world implementations across various industries including healthcare, finance, and autonomous systems
• Ethical Considerations: Important conversations about AI bias, transparency, and responsible development
• Future Predictions: Expert insights on where AI technology is heading in the next 5-10 years

The episode emphasizes how AI is becoming increasingly integrated into everyday technology, from smart assistants to predictive analytics systems.`,
	},
	{
		keyword: "Web Development",
		summary: `This comprehensive discussion covers essential web development best practices. The episode highlights:

• Modern Framework Selection: Evaluation of React, Vue, Angular, and emerging frameworks
• Performance Optimization: Techniques for improving Core Web Vitals and user experience
• Security Best Practices: Implementation of HTTPS, input validation, and protection against common vulnerabilities
• Code Quality: Testing strategies, code reviews, and maintainable architecture patterns

The hosts emphasize the importance of staying current with industry standards while building scalable, secure, and performant web applications.`,
	},
	{
		keyword: "Cloud Computing",
		summary: `This episode provides a deep dive into current cloud computing trends and strategic implementation approaches:

• Multi-Cloud Strategies: Benefits and challenges of using multiple cloud providers
• Serverless Architecture: Cost optimization and scalability advantages
• Edge Computing: Reducing latency and improving user experience
• Security and Compliance: Best practices for protecting data in cloud environments

The discussion includes practical advice for businesses looking to optimize their cloud infrastructure while maintaining security and performance standards.`,
	},
	{
		keyword: "Cybersecurity",
		summary: `This critical episode addresses cybersecurity challenges in today's digital landscape:

• Threat Landscape: Analysis of current cyber threats including ransomware, phishing, and state-sponsored attacks
• Zero-Trust Architecture: Implementation strategies for enhanced security
• Incident Response: Best practices for handling security breaches
• Compliance and Regulations: Navigating cybersecurity requirements across industries

The episode emphasizes the importance of proactive security measures and continuous monitoring in protecting digital assets.`,
	},
	{
		keyword: "Data Science",
		summary: `This episode explores the transformative power of data science in modern business:

• Predictive Analytics: How machine learning is revolutionizing business intelligence
• Data-Driven Decision Making: Frameworks for incorporating analytics into strategic planning
• Big Data Technologies: Tools and platforms for processing large datasets
• Industry Applications: Real-world examples from healthcare, finance, and retail

The discussion highlights how organizations can leverage data science to gain competitive advantages and improve operational efficiency.`,
	},
}
