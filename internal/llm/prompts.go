package llm

import "fmt"

// #region prompts

func mathPrompt(question, context string) string {
	extra := ""
	if context != "" {
		extra = "\n" + context + "\n"
	}
	return fmt.Sprintf(`You are an expert mathematics professor. Please solve the following mathematical question step by step.

Question: %s

Instructions:
1. Provide a clear, step-by-step solution
2. Explain each step in detail
3. Use proper mathematical notation
4. Include the final answer clearly marked
5. If the problem involves multiple concepts, explain how they relate
6. Be educational and help the student understand the process
%s
Please provide your solution:`, question, extra)
}

func stepsPrompt(response string) string {
	return fmt.Sprintf(`Extract the step-by-step solution from this mathematical response:

Response: %s

Please extract each step and format them as a numbered list. Each step should be clear and concise.

Steps:`, response)
}

func answerPrompt(response string) string {
	return fmt.Sprintf(`Extract the final answer from this mathematical response:

Response: %s

Look for:
- "Answer:", "Final answer:", "Solution:", "Result:"
- The final numerical or algebraic result
- The conclusion of the problem

Final answer:`, response)
}

func searchQueryPrompt(question string) string {
	return fmt.Sprintf(`Convert this mathematical question into an optimized web search query:

Question: %s

Requirements:
1. Include key mathematical terms
2. Add "step by step solution" or "tutorial"
3. Include the mathematical topic (algebra, calculus, etc.)
4. Keep it concise but comprehensive
5. Use terms that would appear in educational math websites

Search query:`, question)
}

// EvaluationPrompt asks the model to score a (question, response) pair on
// the metrics the response evaluator parses back out.
func EvaluationPrompt(question, response string) string {
	return fmt.Sprintf(`Evaluate the quality of this mathematical response:

Question: %s
Response: %s

Rate the following aspects on a scale of 0-1:
1. Accuracy: Is the mathematical solution correct?
2. Clarity: Is the explanation clear and easy to follow?
3. Completeness: Does it address all parts of the question?

Provide your evaluation in this format:
Accuracy: [score]
Clarity: [score]
Completeness: [score]

Explanation: [brief explanation of your evaluation]`, question, response)
}

// #endregion prompts
