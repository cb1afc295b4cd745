package source

// Builtin returns the curated component declarations shipped with the
// library. They cover the common building blocks of the target flow
// editor so a catalog is usable without any external source directory.
func Builtin() []ComponentDoc {
	return []ComponentDoc{
		{
			TypeID:      "ChatInput",
			DisplayName: "Chat Input",
			Category:    "input_output",
			Description: "Get chat inputs from the Playground",
			Keywords:    []string{"chat", "input", "user", "conversation"},
			Outputs: []PortDoc{
				{Name: "message", Type: "Message"},
			},
			Defaults: map[string]any{
				"sender":               "User",
				"should_store_message": true,
			},
		},
		{
			TypeID:      "ChatOutput",
			DisplayName: "Chat Output",
			Category:    "input_output",
			Description: "Display chat outputs in the Playground",
			Keywords:    []string{"chat", "output", "response", "display"},
			Inputs: []PortDoc{
				{Name: "input_value", Types: []string{"Message", "Text"}},
			},
			Defaults: map[string]any{
				"should_store_message": true,
			},
		},
		{
			TypeID:      "TextInput",
			DisplayName: "Text Input",
			Category:    "input_output",
			Description: "Get text inputs from the Playground",
			Keywords:    []string{"text", "input", "prompt", "template"},
			Outputs: []PortDoc{
				{Name: "text", Type: "Message"},
			},
			Defaults: map[string]any{
				"input_value": "",
			},
		},
		{
			TypeID:      "LanguageModel",
			DisplayName: "Language Model",
			Category:    "model",
			Description: "Run a language model over the incoming message",
			Keywords:    []string{"llm", "model", "language", "generate", "completion"},
			Inputs: []PortDoc{
				{Name: "input_value", Types: []string{"Message", "Text"}},
				{Name: "system_message", Types: []string{"Message", "Text"}},
				{Name: "context", Types: []string{"Retriever", "Data"}},
			},
			Outputs: []PortDoc{
				{Name: "text_output", Type: "Message"},
				{Name: "model_output", Type: "LanguageModel"},
			},
			Defaults: map[string]any{
				"model_name":  "gpt-4o-mini",
				"temperature": 0.7,
				"max_tokens":  1000,
			},
		},
		{
			TypeID:      "OpenAIModel",
			DisplayName: "OpenAI",
			Category:    "model",
			Description: "OpenAI language models (GPT-3.5, GPT-4, etc.)",
			Keywords:    []string{"openai", "gpt", "llm", "model", "completion"},
			Inputs: []PortDoc{
				{Name: "input_value", Types: []string{"Message", "Text"}},
				{Name: "system_message", Types: []string{"Message", "Text"}},
				{Name: "context", Types: []string{"Retriever", "Data"}},
			},
			Outputs: []PortDoc{
				{Name: "text_output", Type: "Message"},
				{Name: "model_output", Type: "LanguageModel"},
			},
			Defaults: map[string]any{
				"model_name":  "gpt-4",
				"temperature": 0.7,
				"max_tokens":  1000,
			},
		},
		{
			TypeID:      "AnthropicModel",
			DisplayName: "Anthropic",
			Category:    "model",
			Description: "Anthropic Claude models",
			Keywords:    []string{"anthropic", "claude", "llm", "model", "reasoning"},
			Inputs: []PortDoc{
				{Name: "input_value", Types: []string{"Message", "Text"}},
				{Name: "system_message", Types: []string{"Message", "Text"}},
				{Name: "context", Types: []string{"Retriever", "Data"}},
			},
			Outputs: []PortDoc{
				{Name: "text_output", Type: "Message"},
				{Name: "model_output", Type: "LanguageModel"},
			},
			Defaults: map[string]any{
				"model_name":  "claude-sonnet-4-5",
				"temperature": 0.7,
				"max_tokens":  1000,
			},
		},
		{
			TypeID:      "Agent",
			DisplayName: "Agent",
			Category:    "agent",
			Description: "AI agent that can use tools and follow instructions",
			Keywords:    []string{"agent", "tools", "autonomous", "reasoning"},
			Inputs: []PortDoc{
				{Name: "agent_llm", Types: []string{"LanguageModel"}},
				{Name: "tools", Types: []string{"Tool"}, Multi: true},
				{Name: "user_message", Types: []string{"Message", "Text"}},
				{Name: "system_message", Types: []string{"Message", "Text"}},
			},
			Outputs: []PortDoc{
				{Name: "response", Type: "Message"},
			},
			Defaults: map[string]any{
				"system_message": "You are a helpful assistant that can use tools to answer questions.",
			},
		},
		{
			TypeID:      "FileComponent",
			DisplayName: "File",
			Category:    "data",
			Description: "Load and process files (PDF, TXT, DOCX, etc.)",
			Keywords:    []string{"file", "document", "pdf", "load", "upload"},
			Outputs: []PortDoc{
				{Name: "data", Type: "Data"},
			},
			Defaults: map[string]any{
				"path": "",
			},
		},
		{
			TypeID:      "TextSplitter",
			DisplayName: "Text Splitter",
			Category:    "processing",
			Description: "Split text into chunks for processing",
			Keywords:    []string{"split", "chunk", "preprocess", "text"},
			Inputs: []PortDoc{
				{Name: "documents", Types: []string{"Data"}},
			},
			Outputs: []PortDoc{
				{Name: "chunks", Type: "Data"},
			},
			Defaults: map[string]any{
				"chunk_size":    1000,
				"chunk_overlap": 200,
			},
		},
		{
			TypeID:      "OpenAIEmbeddings",
			DisplayName: "OpenAI Embeddings",
			Category:    "embedding",
			Description: "OpenAI text embedding models",
			Keywords:    []string{"embeddings", "vector", "similarity", "semantic"},
			Outputs: []PortDoc{
				{Name: "embeddings", Type: "Embeddings"},
			},
			Defaults: map[string]any{
				"model": "text-embedding-3-small",
			},
		},
		{
			TypeID:      "ChromaDB",
			DisplayName: "Chroma",
			Category:    "vector_store",
			Description: "Chroma vector database for semantic search",
			Keywords:    []string{"chroma", "vector", "database", "retrieval", "search"},
			Inputs: []PortDoc{
				{Name: "documents", Types: []string{"Data"}},
				{Name: "embedding", Types: []string{"Embeddings"}},
			},
			Outputs: []PortDoc{
				{Name: "retriever", Type: "Retriever"},
			},
			Defaults: map[string]any{
				"collection_name": "documents",
			},
		},
		{
			TypeID:      "CalculatorComponent",
			DisplayName: "Calculator",
			Category:    "tool",
			Description: "Perform mathematical calculations",
			Keywords:    []string{"calculator", "math", "arithmetic"},
			Outputs: []PortDoc{
				{Name: "component_as_tool", Type: "Tool"},
			},
		},
		{
			TypeID:      "WebSearchTool",
			DisplayName: "Web Search",
			Category:    "tool",
			Description: "Search the web for information",
			Keywords:    []string{"search", "web", "internet", "lookup"},
			Outputs: []PortDoc{
				{Name: "component_as_tool", Type: "Tool"},
			},
		},
	}
}

// BuiltinTemplates returns the starter graphs shipped with the library,
// one per proven archetype. Each template is structurally valid against
// the Builtin component set; the catalog builder re-checks this at index
// time.
func BuiltinTemplates() []TemplateDoc {
	return []TemplateDoc{
		{
			Archetype: "basic_chat",
			Name:      "Basic Prompting",
			Nodes: []TemplateNodeDoc{
				{ID: "chat_input", Type: "ChatInput"},
				{ID: "model", Type: "LanguageModel"},
				{ID: "chat_output", Type: "ChatOutput"},
			},
			Edges: []TemplateEdgeDoc{
				{Source: "chat_input", SourcePort: "message", Target: "model", TargetPort: "input_value"},
				{Source: "model", SourcePort: "text_output", Target: "chat_output", TargetPort: "input_value"},
			},
		},
		{
			Archetype: "document_qa",
			Name:      "Document Q&A",
			Nodes: []TemplateNodeDoc{
				{ID: "chat_input", Type: "ChatInput"},
				{ID: "file", Type: "FileComponent"},
				{ID: "splitter", Type: "TextSplitter"},
				{ID: "embeddings", Type: "OpenAIEmbeddings"},
				{ID: "chroma", Type: "ChromaDB"},
				{ID: "model", Type: "OpenAIModel"},
				{ID: "chat_output", Type: "ChatOutput"},
			},
			Edges: []TemplateEdgeDoc{
				{Source: "chat_input", SourcePort: "message", Target: "model", TargetPort: "input_value"},
				{Source: "file", SourcePort: "data", Target: "splitter", TargetPort: "documents"},
				{Source: "splitter", SourcePort: "chunks", Target: "chroma", TargetPort: "documents"},
				{Source: "embeddings", SourcePort: "embeddings", Target: "chroma", TargetPort: "embedding"},
				{Source: "chroma", SourcePort: "retriever", Target: "model", TargetPort: "context"},
				{Source: "model", SourcePort: "text_output", Target: "chat_output", TargetPort: "input_value"},
			},
		},
		{
			Archetype: "agent_tools",
			Name:      "Simple Agent",
			Nodes: []TemplateNodeDoc{
				{ID: "chat_input", Type: "ChatInput"},
				{ID: "model", Type: "OpenAIModel"},
				{ID: "agent", Type: "Agent"},
				{ID: "calculator", Type: "CalculatorComponent"},
				{ID: "web_search", Type: "WebSearchTool"},
				{ID: "chat_output", Type: "ChatOutput"},
			},
			Edges: []TemplateEdgeDoc{
				{Source: "chat_input", SourcePort: "message", Target: "agent", TargetPort: "user_message"},
				{Source: "model", SourcePort: "model_output", Target: "agent", TargetPort: "agent_llm"},
				{Source: "calculator", SourcePort: "component_as_tool", Target: "agent", TargetPort: "tools"},
				{Source: "web_search", SourcePort: "component_as_tool", Target: "agent", TargetPort: "tools"},
				{Source: "agent", SourcePort: "response", Target: "chat_output", TargetPort: "input_value"},
			},
		},
		{
			Archetype: "rag_system",
			Name:      "Vector Store RAG",
			Nodes: []TemplateNodeDoc{
				{ID: "file", Type: "FileComponent"},
				{ID: "splitter", Type: "TextSplitter"},
				{ID: "embeddings", Type: "OpenAIEmbeddings"},
				{ID: "chroma", Type: "ChromaDB"},
				{ID: "chat_input", Type: "ChatInput"},
				{ID: "model", Type: "LanguageModel"},
				{ID: "chat_output", Type: "ChatOutput"},
			},
			Edges: []TemplateEdgeDoc{
				{Source: "file", SourcePort: "data", Target: "splitter", TargetPort: "documents"},
				{Source: "splitter", SourcePort: "chunks", Target: "chroma", TargetPort: "documents"},
				{Source: "embeddings", SourcePort: "embeddings", Target: "chroma", TargetPort: "embedding"},
				{Source: "chroma", SourcePort: "retriever", Target: "model", TargetPort: "context"},
				{Source: "chat_input", SourcePort: "message", Target: "model", TargetPort: "input_value"},
				{Source: "model", SourcePort: "text_output", Target: "chat_output", TargetPort: "input_value"},
			},
		},
	}
}
