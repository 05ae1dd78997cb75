package catalog

import "github.com/krisalay/simple-nav/search"

var categories = []search.Category{
	{ID: 1, Name: "科技", ShortName: "科技", Icon: "🔧"},
	{ID: 2, Name: "教育", ShortName: "教育", Icon: "📚"},
	{ID: 3, Name: "设计", ShortName: "设计", Icon: "🎨"},
	{ID: 4, Name: "AI资源", ShortName: "AI资源", Icon: "🤖"},
	{ID: 5, Name: "开发工具", ShortName: "开发工具", Icon: "💻"},
	{ID: 6, Name: "实用工具", ShortName: "实用工具", Icon: "💻"},
}

var announcements = []Announcement{
	{ID: "ann1", Text: "欢迎访问导航站点！这里收集了最实用的开发资源和工具"},
	{ID: "ann2", Text: "新增AI资源导航专区，持续更新中..."},
	{ID: "ann3", Text: "这是一个导航网站，欢迎大家收藏！"},
	{ID: "ann4", Text: "这是新增加的一个公告，欢迎大家阅读提出意见！"},
}

var hotSites = []search.Site{
	{ID: 1, Name: "GitHub", URL: "https://github.com", Description: "全球最大的代码托管平台，你的编程协同平台", Icon: "/icons/Github.svg"},
	{ID: 2, Name: "Stack Overflow", URL: "https://stackoverflow.com", Description: "程序员问答社区", Icon: "/icons/deepseek.svg"},
	{ID: 3, Name: "Dribbble", URL: "https://dribbble.com", Description: "设计师作品展示平台", Icon: "/icons/deepseek.svg"},
	{ID: 4, Name: "Google", URL: "https://www.google.com", Description: "全球最大的搜索引擎", Icon: "/icons/google.svg"},
	{ID: 5, Name: "YouTube", URL: "https://www.youtube.com", Description: "全球最大的视频分享平台", Icon: "/icons/youtube.svg"},
	{ID: 6, Name: "ChatGPT", URL: "https://chat.openai.com", Description: "OpenAI开发的AI对话平台", Icon: "/icons/openai.svg"},
	{ID: 7, Name: "MDN", URL: "https://developer.mozilla.org", Description: "Web开发技术文档", Icon: "/icons/deepseek.svg"},
	{ID: 8, Name: "Figma", URL: "https://www.figma.com", Description: "专业的在线设计工具", Icon: "/icons/figma.svg"},
	{ID: 9, Name: "LeetCode", URL: "https://leetcode.com", Description: "程序员刷题平台", Icon: "/icons/deepseek.svg"},
	{ID: 10, Name: "ProductHunt", URL: "https://www.producthunt.com", Description: "新产品发布平台", Icon: "/icons/producthunt.svg"},
}

var categorySites = map[int][]search.Site{
	1: {
		{ID: 1, Name: "TechCrunch", URL: "https://techcrunch.com", Description: "科技新闻和创业公司报道，值得一看", Icon: "/icons/deepseek.svg"},
		{ID: 2, Name: "Wired", URL: "https://www.wired.com", Description: "前沿科技和数字文化", Icon: "/icons/deepseek.svg"},
		{ID: 3, Name: "The Verge", URL: "https://www.theverge.com", Description: "科技、科学、艺术和文化", Icon: "/icons/deepseek.svg"},
		{ID: 4, Name: "Engadget", URL: "https://www.engadget.com", Description: "消费电子产品评测", Icon: "/icons/deepseek.svg"},
		{ID: 5, Name: "CNET", URL: "https://www.cnet.com", Description: "科技产品评测和新闻", Icon: "/icons/deepseek.svg"},
		{ID: 6, Name: "Ars Technica", URL: "https://arstechnica.com", Description: "深度科技分析", Icon: "/icons/deepseek.svg"},
		{ID: 7, Name: "MIT Tech Review", URL: "https://www.technologyreview.com", Description: "麻省理工科技评论", Icon: "/icons/deepseek.svg"},
		{ID: 8, Name: "Digital Trends", URL: "https://www.digitaltrends.com", Description: "科技产品趋势和评测", Icon: "/icons/deepseek.svg"},
		{ID: 9, Name: "Gizmodo", URL: "https://gizmodo.com", Description: "设计、科技和科学文化", Icon: "/icons/deepseek.svg"},
		{ID: 10, Name: "Mashable", URL: "https://mashable.com", Description: "科技、数字文化和娱乐", Icon: "/icons/deepseek.svg"},
	},
	2: {
		{ID: 1, Name: "Coursera", URL: "https://www.coursera.org", Description: "顶尖大学在线课程", Icon: "/icons/deepseek.svg"},
		{ID: 2, Name: "edX", URL: "https://www.edx.org", Description: "哈佛、麻省理工等名校课程", Icon: "/icons/deepseek.svg"},
		{ID: 3, Name: "Khan Academy", URL: "https://www.khanacademy.org", Description: "免费教育平台", Icon: "/icons/deepseek.svg"},
		{ID: 4, Name: "Udemy", URL: "https://www.udemy.com", Description: "技能学习平台", Icon: "/icons/deepseek.svg"},
		{ID: 5, Name: "Duolingo", URL: "https://www.duolingo.com", Description: "语言学习应用", Icon: "/icons/deepseek.svg"},
		{ID: 6, Name: "Brilliant", URL: "https://brilliant.org", Description: "数学和科学互动课程", Icon: "/icons/deepseek.svg"},
		{ID: 7, Name: "Quizlet", URL: "https://quizlet.com", Description: "学习工具和闪卡", Icon: "/icons/deepseek.svg"},
		{ID: 8, Name: "TED-Ed", URL: "https://ed.ted.com", Description: "TED教育视频", Icon: "/icons/deepseek.svg"},
		{ID: 9, Name: "Codecademy", URL: "https://www.codecademy.com", Description: "编程学习平台", Icon: "/icons/deepseek.svg"},
		{ID: 10, Name: "Crash Course", URL: "https://thecrashcourse.com", Description: "各学科速成课程", Icon: "/icons/deepseek.svg"},
	},
	3: {
		{ID: 1, Name: "Behance", URL: "https://www.behance.net", Description: "创意作品展示平台", Icon: "/icons/deepseek.svg"},
		{ID: 2, Name: "Dribbble", URL: "https://dribbble.com", Description: "设计师作品展示平台", Icon: "/icons/deepseek.svg"},
		{ID: 3, Name: "Awwwards", URL: "https://www.awwwards.com", Description: "网页设计奖项", Icon: "/icons/deepseek.svg"},
		{ID: 4, Name: "Pinterest", URL: "https://www.pinterest.com", Description: "创意灵感收集", Icon: "/icons/deepseek.svg"},
		{ID: 5, Name: "Canva", URL: "https://www.canva.com", Description: "在线平面设计工具", Icon: "/icons/deepseek.svg"},
		{ID: 6, Name: "Adobe Color", URL: "https://color.adobe.com", Description: "色彩搭配工具", Icon: "/icons/deepseek.svg"},
		{ID: 7, Name: "Figma", URL: "https://www.figma.com", Description: "协作设计工具", Icon: "/icons/deepseek.svg"},
		{ID: 8, Name: "Unsplash", URL: "https://unsplash.com", Description: "免费高质量图片", Icon: "/icons/deepseek.svg"},
		{ID: 9, Name: "Coolors", URL: "https://coolors.co", Description: "配色方案生成器", Icon: "/icons/deepseek.svg"},
		{ID: 10, Name: "Sketch", URL: "https://www.sketch.com", Description: "Mac设计工具", Icon: "/icons/deepseek.svg"},
	},
	4: {
		{ID: 1, Name: "OpenAI", URL: "https://openai.com", Description: "ChatGPT和DALL-E开发商", Icon: "/icons/deepseek.svg"},
		{ID: 2, Name: "Hugging Face", URL: "https://huggingface.co", Description: "AI模型和数据集社区", Icon: "/icons/deepseek.svg"},
		{ID: 3, Name: "Midjourney", URL: "https://www.midjourney.com", Description: "AI图像生成", Icon: "/icons/deepseek.svg"},
		{ID: 4, Name: "Anthropic", URL: "https://www.anthropic.com", Description: "Claude AI助手开发商", Icon: "/icons/deepseek.svg"},
		{ID: 5, Name: "Runway", URL: "https://runwayml.com", Description: "AI创意工具", Icon: "/icons/deepseek.svg"},
		{ID: 6, Name: "Stability AI", URL: "https://stability.ai", Description: "Stable Diffusion开发商", Icon: "/icons/deepseek.svg"},
		{ID: 7, Name: "Perplexity AI", URL: "https://www.perplexity.ai", Description: "AI搜索引擎", Icon: "/icons/deepseek.svg"},
		{ID: 8, Name: "Replicate", URL: "https://replicate.com", Description: "AI模型运行平台", Icon: "/icons/deepseek.svg"},
		{ID: 9, Name: "Cohere", URL: "https://cohere.com", Description: "NLP API服务", Icon: "/icons/deepseek.svg"},
		{ID: 10, Name: "AI Dungeon", URL: "https://play.aidungeon.io", Description: "AI文字冒险游戏", Icon: "/icons/deepseek.svg"},
	},
	5: {
		{ID: 1, Name: "GitHub", URL: "https://github.com", Description: "代码托管平台", Icon: "/icons/Github.svg"},
		{ID: 2, Name: "Stack Overflow", URL: "https://stackoverflow.com", Description: "程序员问答社区", Icon: "/icons/deepseek.svg"},
		{ID: 3, Name: "VS Code", URL: "https://code.visualstudio.com", Description: "微软代码编辑器", Icon: "/icons/deepseek.svg"},
		{ID: 4, Name: "CodePen", URL: "https://codepen.io", Description: "前端代码分享平台", Icon: "/icons/deepseek.svg"},
		{ID: 5, Name: "Vercel", URL: "https://vercel.com", Description: "前端部署平台", Icon: "/icons/deepseek.svg"},
		{ID: 6, Name: "MDN Web Docs", URL: "https://developer.mozilla.org", Description: "Web开发文档", Icon: "/icons/deepseek.svg"},
		{ID: 7, Name: "Netlify", URL: "https://www.netlify.com", Description: "静态网站托管", Icon: "/icons/deepseek.svg"},
		{ID: 8, Name: "Postman", URL: "https://www.postman.com", Description: "API测试工具", Icon: "/icons/deepseek.svg"},
		{ID: 9, Name: "Docker", URL: "https://www.docker.com", Description: "容器化平台", Icon: "/icons/deepseek.svg"},
		{ID: 10, Name: "GitLab", URL: "https://gitlab.com", Description: "DevOps平台", Icon: "/icons/deepseek.svg"},
	},
}

var adImages = []AdImage{
	{ID: 1, Src: "/ads/ad1.jpg", Alt: "广告图片1", Link: "https://example.com/ad1"},
	{ID: 2, Src: "/ads/ad2.jpg", Alt: "广告图片2", Link: "https://example.com/ad2"},
	{ID: 3, Src: "/ads/ad3.jpg", Alt: "广告图片3", Link: "https://example.com/ad3"},
}
