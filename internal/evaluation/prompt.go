package evaluation

import "fmt"

const systemPrompt = "You are a top-tier recruitment evaluation assistant."

const promptTemplate = `
You are a recruitment expert responsible for assessing candidate qualifications.
Focus on key competencies mentioned in both the job description and resume.

### Job Description:
%s

### Candidate Resume:
%s

**Evaluation Breakdown (Total out of 100):**
1. Core Technical Skills (60%%):
   - Specific project details (45%%)
   - General technical knowledge (15%%)
2. Professional Experience (10%%)
3. Educational Background (20%%)
4. Geographic Relevance (5%%)
5. Additional Certifications (5%%)

**Result:**
- "Match: Yes" for scores 70 or above.
- "Match: No" for scores below 70.

Provide the result in the JSON format:
{
  "Candidate Name": "Candidate Name",
  "Email": "Email Address",
  "Score": NumericScore,
  "Match": "Yes/No",
  "Skills Found": ["List", "of", "skills"],
  "Rationale": "Short explanation"
}
`

// buildPrompt embeds the job description and resume text verbatim into the
// fixed evaluation template.
func buildPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(promptTemplate, jobDescription, resumeText)
}
