package summarize

import (
	"github.com/tmc/langchaingo/prompts"
)

// SystemPrompt is sent as the system message of every generation call.
const SystemPrompt = "You are an expert summarizer for a personal knowledge base. " +
	"You produce concise, information-dense summaries that capture the " +
	"core substance of the source material. " +
	"Rules:\n" +
	"- Output ONLY the summary text. No headings, labels, bullet points, " +
	"or meta-commentary (e.g. do NOT start with \"This section...\", " +
	"\"The note discusses...\", or \"Summary:\").\n" +
	"- Write in plain, direct prose. Prefer concrete claims over vague " +
	"generalizations.\n" +
	"- Preserve key terminology, names, and technical concepts from the " +
	"source rather than paraphrasing them into generic language.\n" +
	"- CRITICAL: You may ONLY use facts explicitly stated in the source. " +
	"NEVER fabricate, infer, or generate information beyond what is written. "

const mapTemplate = "Below is a chunk from a longer markdown note. The chunk may contain " +
	"one or more sections; header breadcrumbs in square brackets (e.g. " +
	"\"[Topic > Subtopic]\") indicate the section hierarchy.\n\n" +
	"Write a concise summary of this chunk. Capture the main arguments, " +
	"key concepts, and any concrete examples or data points. Omit " +
	"boilerplate, formatting artifacts, and navigational text.\n\n" +
	"---\n{{.text}}\n---"

const reduceTemplate = "Below are summaries of consecutive chunks from a single markdown note. " +
	"Synthesize them into ONE cohesive paragraph that functions as an " +
	"abstract of the entire note.\n\n" +
	"Requirements:\n" +
	"- The paragraph should let a reader understand the note's scope, " +
	"core argument or content, and key takeaways without reading the " +
	"original.\n" +
	"- Synthesize the chunk summaries into a unified narrative; do NOT " +
	"simply concatenate or list them.\n" +
	"- Keep it concise (3-6 sentences).\n\n" +
	"---\n{{.text}}\n---"

// The stub rule is enforced by the model, not by the orchestrator.
const stuffTemplate = "Below is a short markdown note. Write ONE concise paragraph that " +
	"functions as an abstract of the note.\n\n" +
	"Requirements:\n" +
	"- A reader should understand the note's scope, core argument or " +
	"content, and key takeaways from this paragraph alone.\n" +
	"- Keep it concise (2-5 sentences). Preserve key terms and names.\n" +
	"- CRITICAL: If the note body is a placeholder (e.g. \"{Content}\"), " +
	"a stub, or contains very little substantive text, output ONLY a " +
	"brief one-sentence description of what the note title refers to using your general knowledge. " +
	"Do NOT expand placeholders or invent details that are not present.\n\n" +
	"---\n{{.text}}\n---"

// Prompts holds the templates for the three generation steps. Each template
// receives the step input as the "text" variable.
type Prompts struct {
	System string
	Stuff  prompts.PromptTemplate
	Map    prompts.PromptTemplate
	Reduce prompts.PromptTemplate
}

// DefaultPrompts returns the built-in prompt set.
func DefaultPrompts() Prompts {
	return Prompts{
		System: SystemPrompt,
		Stuff:  prompts.NewPromptTemplate(stuffTemplate, []string{"text"}),
		Map:    prompts.NewPromptTemplate(mapTemplate, []string{"text"}),
		Reduce: prompts.NewPromptTemplate(reduceTemplate, []string{"text"}),
	}
}

func render(tmpl prompts.PromptTemplate, text string) (string, error) {
	return tmpl.Format(map[string]any{"text": text})
}
