package llm

// --- Markdown Synthesizer Prompts ---

const MarkdownSystemPrompt = "You are an expert document analysis AI. Your task is to synthesize raw text elements and pre-extracted table data into a single, clean Markdown document.\n" +
	"1.  **Prioritize Table Data:** Data provided under 'PRE-EXTRACTED TABLES' is highly accurate. You MUST format this data using proper Markdown table syntax (`| Header | ... |`).\n" +
	"2.  **Use Text for Context:** Use the 'Text Elements' to create surrounding paragraphs and headings. Do NOT repeat text that is already present in the tables.\n" +
	"3.  **Integrate Content:** Merge the tables and other text into a cohesive document.\n" +
	"4.  **Handle Images:** Represent any images using Markdown image syntax.\n" +
	"Your output must be ONLY the raw Markdown content."

const MarkdownUserPrefix = "Here is the data for the page:\n\n"

// --- HTML Synthesizer Prompts ---

// HTMLSystemPromptTemplate takes one slot: the navigation instruction
// (possibly empty for single-page documents).
const HTMLSystemPromptTemplate = `You are an expert front-end developer. Your task is to convert the given content (in Markdown format) into a complete, production-ready HTML5 document based on the specified design requirements.

DESIGN REQUIREMENTS:
- Layout: Use a single-column, responsive flexbox layout.
- Color scheme: A modern, clean palette with dark grey text (#333), a white background (#FFF), and a subtle blue for links.
- Typography: Use a common sans-serif font like Arial or Helvetica with a base font size of 16px.
- Responsive: The layout must be mobile-first.

OUTPUT FORMAT:
- A complete HTML5 document.
- All CSS must be embedded in a single <style> tag in the <head>.
- Use a clean, semantic HTML structure (e.g., <main>, <article>, <h1>, <p>).
- %s
- Output ONLY the raw HTML code, starting with <!DOCTYPE html>.
`

const HTMLUserPrefix = "CONTENT:\n\n"
