package catalog

import "course-quiz-service/internal/domain"

// Only web-basics and react-fundamentals ship question banks; the rest fall back.
var quizzes = map[string]map[domain.Level]domain.QuestionSet{
	"web-basics": {
		domain.LevelEasy: {
			Questions: []domain.Question{
				{ID: "q1", Prompt: "Which tag is used for the largest heading in HTML?", Options: []string{"<p>", "<h6>", "<h1>", "<title>"}, CorrectIndex: 2, Explanation: "<h1> is top-level heading."},
				{ID: "q2", Prompt: "Which CSS layout is best for rows and columns?", Options: []string{"Flexbox", "Floats", "Tables", "Inline"}, CorrectIndex: 0, Explanation: "Flexbox is designed for row/column layouts."},
				{ID: "q3", Prompt: "HTML stands for?", Options: []string{"HyperText Markup Language", "HighText Machine Language", "Hyperlinks Text Mark Language", "HyperText Markdown Language"}, CorrectIndex: 0, Explanation: "HTML = HyperText Markup Language."},
				{ID: "q4", Prompt: "Which attribute adds a tooltip text in HTML?", Options: []string{"title", "alt", "tooltip", "data-info"}, CorrectIndex: 0, Explanation: "title attribute shows a tooltip."},
				{ID: "q5", Prompt: "Default display value of <div>?", Options: []string{"inline", "block", "flex", "none"}, CorrectIndex: 1, Explanation: "<div> is block by default."},
			},
			TheoryPrompt: "Explain the difference between block and inline elements with examples.",
		},
		domain.LevelIntermediate: {
			Questions: []domain.Question{
				{ID: "q6", Prompt: "React uses ___ to describe UI.", Options: []string{"HTML", "XML", "JSX", "TSX"}, CorrectIndex: 2, Explanation: "JSX describes UI in JS files."},
				{ID: "q7", Prompt: "Which hook is used for side effects?", Options: []string{"useState", "useEffect", "useMemo", "useRef"}, CorrectIndex: 1, Explanation: "useEffect runs side effects after render."},
				{ID: "q8", Prompt: "Keys in React help with?", Options: []string{"Styling", "Tracking elements in lists", "Routing", "API calls"}, CorrectIndex: 1, Explanation: "Keys help React identify elements in lists."},
				{ID: "q9", Prompt: "Which attribute binds input value to state?", Options: []string{"value", "state", "bind", "onChange"}, CorrectIndex: 0, Explanation: "value attribute binds state to input."},
				{ID: "q10", Prompt: "React fragment shorthand?", Options: []string{"<> </>", "<React.Fragment></React.Fragment>", "<frag></frag>", "Both 1 & 2"}, CorrectIndex: 3, Explanation: "Both shorthand and full Fragment are valid."},
			},
			TheoryPrompt: "Describe state vs props in a typical React component.",
		},
		domain.LevelAdvanced: {
			Questions: []domain.Question{
				{ID: "q11", Prompt: "Which improves render performance?", Options: []string{"Inline functions", "React.memo", "Heavy context", "Deep prop drilling"}, CorrectIndex: 1, Explanation: "React.memo avoids unnecessary re-renders."},
				{ID: "q12", Prompt: "Lazy loading in React is done using?", Options: []string{"React.lazy", "Suspense", "Both", "useEffect"}, CorrectIndex: 2, Explanation: "React.lazy + Suspense enables lazy loading."},
				{ID: "q13", Prompt: "What is a pure component?", Options: []string{"No props", "No state", "Renders same output for same props", "Class only"}, CorrectIndex: 2, Explanation: "Pure components render same output for same props."},
				{ID: "q14", Prompt: "When to use useCallback?", Options: []string{"Memoize functions", "Memoize JSX", "Trigger re-render", "Async fetch"}, CorrectIndex: 0, Explanation: "useCallback memoizes a function reference."},
				{ID: "q15", Prompt: "Best method to prevent unnecessary re-renders?", Options: []string{"useState", "React.memo", "Direct DOM updates", "Redux only"}, CorrectIndex: 1, Explanation: "React.memo avoids re-renders for unchanged props."},
			},
			TheoryPrompt: "Outline steps to optimize a slow React list rendering UI.",
		},
	},
	"react-fundamentals": {
		domain.LevelEasy: {
			Questions: []domain.Question{
				{ID: "rf_q1", Prompt: "A React component name should start with:", Options: []string{"lowercase", "uppercase", "number", "underscore"}, CorrectIndex: 1, Explanation: "Components must start uppercase."},
				{ID: "rf_q2", Prompt: "JSX compiles primarily to:", Options: []string{"HTML", "Function calls", "XML", "JSON"}, CorrectIndex: 1, Explanation: "JSX compiles to React.createElement calls."},
				{ID: "rf_q3", Prompt: "React components can return:", Options: []string{"Single element", "Multiple sibling elements", "Fragment", "All of these"}, CorrectIndex: 3, Explanation: "Components can return multiple elements via Fragment."},
				{ID: "rf_q4", Prompt: "useState hook returns?", Options: []string{"State only", "Setter only", "Array of [state,setter]", "Object with state"}, CorrectIndex: 2, Explanation: "useState returns [state, setter]."},
				{ID: "rf_q5", Prompt: "Props are?", Options: []string{"Mutable", "Immutable", "Methods only", "State only"}, CorrectIndex: 1, Explanation: "Props are immutable from the child's perspective."},
			},
			TheoryPrompt: "Explain how props flow from parent to child with a minimal code example.",
		},
		domain.LevelIntermediate: {
			Questions: []domain.Question{
				{ID: "rf_q6", Prompt: "Which hook stores a mutable value that persists across renders without causing re-render?", Options: []string{"useState", "useEffect", "useRef", "useMemo"}, CorrectIndex: 2, Explanation: "useRef stores a mutable value."},
				{ID: "rf_q7", Prompt: "What does React.memo help with?", Options: []string{"Routing", "Avoiding unnecessary re-renders", "Fetching data", "Styling"}, CorrectIndex: 1, Explanation: "React.memo memoizes a component output."},
				{ID: "rf_q8", Prompt: "Controlled input must have?", Options: []string{"value prop", "onChange", "Both", "None"}, CorrectIndex: 2, Explanation: "Controlled input needs value + onChange."},
				{ID: "rf_q9", Prompt: "Context API avoids?", Options: []string{"Prop drilling", "State management", "API calls", "Routing"}, CorrectIndex: 0, Explanation: "Context avoids prop drilling."},
				{ID: "rf_q10", Prompt: "useEffect cleanup runs?", Options: []string{"After mount", "Before unmount", "Before every effect", "After every render"}, CorrectIndex: 2, Explanation: "Cleanup runs before next effect or unmount."},
			},
			TheoryPrompt: "Compare controlled vs uncontrolled inputs in React.",
		},
		domain.LevelAdvanced: {
			Questions: []domain.Question{
				{ID: "rf_q11", Prompt: "Redux Toolkit slice typically contains:", Options: []string{"reducers", "actions", "initialState", "All of these"}, CorrectIndex: 3, Explanation: "Slice has initialState, reducers, and actions."},
				{ID: "rf_q12", Prompt: "Middleware in Redux is used to?", Options: []string{"Intercept actions", "Dispatch actions", "Fetch only", "Store only"}, CorrectIndex: 0, Explanation: "Middleware intercepts actions for side effects."},
				{ID: "rf_q13", Prompt: "React.lazy works with?", Options: []string{"Functional components", "Class components", "Both", "Hooks only"}, CorrectIndex: 0, Explanation: "Lazy works with functional components."},
				{ID: "rf_q14", Prompt: "When to use useReducer?", Options: []string{"Simple state", "Complex state logic", "Async fetch", "API call"}, CorrectIndex: 1, Explanation: "useReducer is for complex state logic."},
				{ID: "rf_q15", Prompt: "Selector in Redux Toolkit does?", Options: []string{"Modify state", "Extract state", "Dispatch action", "None"}, CorrectIndex: 1, Explanation: "Selector extracts specific state."},
			},
			TheoryPrompt: "When would you choose Context API over Redux? Justify with trade-offs.",
		},
	},
}
