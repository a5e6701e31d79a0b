package llm

import "testing"

func TestCleanJSONBlock_FencedResponses(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json fence around insight payload",
			input:    "```json\n{\"company_name\": \"Infosys\"}\n```",
			expected: `{"company_name": "Infosys"}`,
		},
		{
			name:     "generic fence",
			input:    "```\n{\"risk_level\": \"Medium\"}\n```",
			expected: `{"risk_level": "Medium"}`,
		},
		{
			name:     "fence with language identifier line",
			input:    "```javascript\n{\"verdict\": \"Apply\"}\n```",
			expected: `{"verdict": "Apply"}`,
		},
		{
			name:     "bare json untouched",
			input:    `{"clarity_score": 0.8}`,
			expected: `{"clarity_score": 0.8}`,
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "\n\n  {\"role_title\": \"Systems Engineer\"}  \n",
			expected: `{"role_title": "Systems Engineer"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestCleanJSONBlock_SurroundingProse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "preamble before object",
			input:    "Here is the analysis you asked for:\n{\"company_name\": \"TCS\"}",
			expected: `{"company_name": "TCS"}`,
		},
		{
			name:     "trailing commentary after object",
			input:    "{\"recommendation\": \"Skip\"}\nLet me know if you need anything else.",
			expected: `{"recommendation": "Skip"}`,
		},
		{
			name:     "preamble and trailing text",
			input:    "Sure! Here's the JSON:\n{\"risk_level\": \"High\"}\nHope this helps.",
			expected: `{"risk_level": "High"}`,
		},
		{
			name:     "nested objects survive",
			input:    "Analysis complete:\n{\"company\": {\"name\": \"Wipro\", \"tier\": \"Tier-1\"}}",
			expected: `{"company": {"name": "Wipro", "tier": "Tier-1"}}`,
		},
		{
			name:     "escaped quotes inside values",
			input:    `The model said: {"concern": "JD says \"immediate joiners only\""}`,
			expected: `{"concern": "JD says \"immediate joiners only\""}`,
		},
		{
			name:     "array after preamble",
			input:    "Extracted the following risks:\n[\"bond clause\", \"rotational shifts\"]",
			expected: `["bond clause", "rotational shifts"]`,
		},
		{
			name:     "plain prose returned as-is",
			input:    "I could not produce a structured answer.",
			expected: "I could not produce a structured answer.",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain object",
			input:    `{"fresher_alignment": "Good"}`,
			expected: `{"fresher_alignment": "Good"}`,
		},
		{
			name:     "braces inside string value",
			input:    `{"bullet": "Built {service} handling 1M requests"}`,
			expected: `{"bullet": "Built {service} handling 1M requests"}`,
		},
		{
			name:     "trailing text stripped",
			input:    `{"confidence": 0.72} -- end of response`,
			expected: `{"confidence": 0.72}`,
		},
		{
			name:     "nested object with escaped quote",
			input:    `{"quote": "they want \"rockstars\"", "depth": {"n": 1}}`,
			expected: `{"quote": "they want \"rockstars\"", "depth": {"n": 1}}`,
		},
		{
			name:     "unbalanced object",
			input:    `{"company_name": "Infosys"`,
			expected: "",
		},
		{
			name:     "no object present",
			input:    "no structured data here",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractJSONObject(tt.input)
			if result != tt.expected {
				t.Errorf("extractJSONObject() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain array",
			input:    `["night shifts", "client deployment"]`,
			expected: `["night shifts", "client deployment"]`,
		},
		{
			name:     "array of objects",
			input:    `[{"skill": "Java"}, {"skill": "SQL"}]`,
			expected: `[{"skill": "Java"}, {"skill": "SQL"}]`,
		},
		{
			name:     "nested arrays",
			input:    `[["a", "b"], ["c"]]`,
			expected: `[["a", "b"], ["c"]]`,
		},
		{
			name:     "trailing text stripped",
			input:    `["bond clause"] and that concludes the list`,
			expected: `["bond clause"]`,
		},
		{
			name:     "brackets inside string value",
			input:    `["matched pattern [0-9]+ years"]`,
			expected: `["matched pattern [0-9]+ years"]`,
		},
		{
			name:     "no array present",
			input:    "nothing to extract",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractJSONArray(tt.input)
			if result != tt.expected {
				t.Errorf("extractJSONArray() = %q, want %q", result, tt.expected)
			}
		})
	}
}
