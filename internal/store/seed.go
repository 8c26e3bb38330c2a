package store

// Built-in seed blobs, restored by ResetToDefault and served whenever the
// backing key is absent. The links seed carries the original portal content.
const (
	seedLinks = `| Title | URL | Description | Type | Icon |
|---|---|---|---|---|
| 个人简历分析 | https://analysisresume.netlify.app/ | 上传简历产出分析报告，基于 AI 深度解析您的职业优势，优化求职竞争力。 | tools | FileText |
| 知识点提炼工具 | https://knowledgeanalysis.netlify.app/ | 高效阅读助手，上传文档即可智能提炼核心知识点与方法论架构。 | tools | Activity |
| 开发者中心 | https://developer.google.com | 探索最新的 AI 技术与 API，构建下一代智能应用。 | external | Globe |`

	seedMembers = `| Username | Password | StartDate | EndDate |
|---|---|---|---|`

	seedLogs = `| Actor | IP | Location | Time | Count |
|---|---|---|---|---|`
)
