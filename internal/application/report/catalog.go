// Package report 实现报告章节生成管线：模板目录、占位符渲染与章节编排
package report

import (
	"claims-ai-api/internal/domain/entity"
	apperr "claims-ai-api/pkg/errors"
)

// Catalog 章节模板目录
//
// 模板集合在进程启动时固定，目录本身只读；自定义模板的增删改
// 发生在外部模板库（仓储 mock），不经过这里。
type Catalog struct {
	templates map[string]*entity.ChapterTemplate
	order     []string
}

// NewCatalog 创建目录并装载系统预置模板
func NewCatalog() *Catalog {
	c := &Catalog{
		templates: make(map[string]*entity.ChapterTemplate),
	}
	for i := range builtinTemplates {
		t := &builtinTemplates[i]
		c.templates[t.ID] = t
		c.order = append(c.order, t.ID)
	}
	return c
}

// Lookup 根据章节类型查找模板
func (c *Catalog) Lookup(id string) (*entity.ChapterTemplate, error) {
	t, ok := c.templates[id]
	if !ok {
		return nil, apperr.New(apperr.CodeUnsupportedChapterType, "暂不支持生成 "+id+" 章节")
	}
	return t, nil
}

// List 按固定顺序返回全部模板
func (c *Catalog) List() []*entity.ChapterTemplate {
	out := make([]*entity.ChapterTemplate, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.templates[id])
	}
	return out
}

// 系统预置章节模板，正文中的 [xxx] 为待填充的占位符标记
var builtinTemplates = []entity.ChapterTemplate{
	{
		ID:          "summary",
		Title:       "摘要",
		Description: "案件基本情况与主要结论概览",
		Category:    entity.CategoryBasic,
		Body: `根据案件基本信息，生成以下内容：

一、案件基本情况
出险时间：[出险时间]
出险地点：[出险地点]
保险标的：[保险标的]
损失金额：[损失金额]

二、主要结论
1. 事故原因：[事故原因]
2. 保险责任：[保险责任判定]
3. 理赔建议：[理赔建议]

三、注意事项
[特别说明事项]`,
	},
	{
		ID:          "client_info",
		Title:       "委托方信息",
		Description: "委托方基本信息与委托事项",
		Category:    entity.CategoryBasic,
		Body: `一、委托方基本信息
公司名称：[委托方名称]
联系地址：[联系地址]
联系电话：[联系电话]
联系人：[联系人姓名]

二、委托事项
委托日期：[委托日期]
委托内容：[委托具体内容]
委托要求：[委托方要求]

三、相关文件
已收到文件：[文件清单]
待补充文件：[待补充文件]`,
	},
	{
		ID:          "policy_info",
		Title:       "保单信息",
		Description: "保单基本信息与承保内容",
		Category:    entity.CategoryBasic,
		Body: `一、基本保单信息
保险公司：[保险公司名称]
保单号码：[保单号码]
保险期间：[保险期间]
投保人：[投保人姓名]
被保险人：[被保险人姓名]

二、承保内容
险种名称：[险种名称]
保险金额：[保险金额]
保险费：[保险费金额]
免赔额：[免赔额]

三、特别约定
特别条款：[特别条款内容]
附加险种：[附加险种]`,
	},
	{
		ID:          "insured_info",
		Title:       "被保险人信息",
		Description: "被保险人基本情况与投保情况",
		Category:    entity.CategoryBasic,
		Body: `一、被保险人基本情况
姓名/名称：[被保险人名称]
证件类型：[证件类型]
证件号码：[证件号码]
联系地址：[联系地址]
联系电话：[联系电话]

二、投保情况
投保历史：[投保历史]
理赔记录：[历史理赔记录]
风险状况：[风险评估]

三、经营情况（适用于企业）
经营范围：[经营范围]
经营地址：[经营地址]
营业状况：[营业状况]`,
	},
	{
		ID:          "accident_details",
		Title:       "事故经过",
		Description: "记录事故发生的详细经过和索赔情况",
		Category:    entity.CategoryBasic,
		Body: `一、事故基本情况
出险时间：[具体出险时间]
出险地点：[详细出险地点]
报案时间：[报案时间]
报案人：[报案人姓名及联系方式]

二、事故经过详述
事故起因：[事故发生的直接原因]
事故过程：[详细描述事故发生的全过程]
事故后果：[事故造成的直接后果]

三、相关人员情况
当事人：[当事人基本信息]
证人：[证人信息]
处理人员：[参与处理的人员]

四、初步处理情况
现场处理：[现场如何处理]
报告情况：[向有关部门报告情况]
采取措施：[采取的紧急措施]`,
	},
	{
		ID:          "policy_summary",
		Title:       "保单内容摘要",
		Description: "总结保单的关键条款和保险责任",
		Category:    entity.CategoryBasic,
		Body: `## 保单基本信息

### 投保人信息
- 投保人：[投保人姓名/公司名称]
- 联系方式：[电话号码]

### 被保险人信息
- 被保险人：[被保险人姓名/公司名称]
- 关系：[与投保人关系]

### 保险标的
- 保险标的：[保险标的名称和详细描述]
- 保险价值：[保险价值金额]

### 保险责任
- 保险期间：[保险起止日期]
- 保险金额：[保险金额]
- 保险责任：[详细列出保险责任范围]

### 免责条款
[列出主要的免责条款]`,
	},
	{
		ID:          "site_investigation",
		Title:       "现场查勘",
		Description: "记录现场查勘的详细情况和发现",
		Category:    entity.CategoryInvestigation,
		Body: `一、查勘基本信息
查勘时间：[查勘时间]
查勘人员：[查勘人员姓名及资质]
天气情况：[当时天气状况]
现场状态：[现场保护情况]

二、现场情况描述
现场环境：[现场周边环境描述]
损失标的：[受损标的详细情况]
损失程度：[损失程度评估]
现场痕迹：[重要痕迹记录]

三、现场勘查记录
测量数据：[相关测量数据]
拍照记录：[照片清单及说明]
物证收集：[收集的物证情况]
现场图绘制：[现场示意图说明]

四、初步分析
损失原因：[现场分析的损失原因]
责任初判：[责任归属初步判断]
需要进一步调查的问题：[待查明事项]`,
	},
	{
		ID:          "cause_analysis",
		Title:       "原因分析",
		Description: "分析事故发生的原因和责任认定",
		Category:    entity.CategoryAnalysis,
		Body: `一、损失原因分析
直接原因：[造成损失的直接原因]
间接原因：[相关的间接因素]
根本原因：[深层次原因分析]

二、技术分析
技术资料：[相关技术资料分析]
专家意见：[专业技术人员意见]
检测结果：[相关检测数据]

三、责任认定
事故责任：[事故责任划分]
过失程度：[各方过失程度]
免责情况：[是否存在免责事由]

四、结论
原因结论：[最终原因认定]
责任结论：[最终责任认定]
建议：[相关建议]`,
	},
	{
		ID:          "loss_assessment",
		Title:       "损失核定",
		Description: "评估和核定保险损失金额",
		Category:    entity.CategoryAssessment,
		Body: `一、损失项目清单
直接损失：[直接物质损失项目及金额]
间接损失：[间接损失项目及金额]
施救费用：[施救费用明细]
其他费用：[其他相关费用]

二、损失计算依据
评估方法：[采用的评估方法]
价格依据：[价格确定的依据]
折旧计算：[折旧的计算方法]
市场调研：[市场价格调研情况]

三、损失金额汇总
项目名称        数量    单价    金额
[损失项目1]     [数量]  [单价]  [小计]
[损失项目2]     [数量]  [单价]  [小计]
...
合计损失金额：￥[总金额]元

四、核损说明
合理性分析：[损失的合理性]
必要性分析：[损失的必要性]
调整说明：[如有调整的说明]`,
	},
	{
		ID:          "insurance_liability",
		Title:       "保险责任",
		Description: "保险条款分析与责任认定",
		Category:    entity.CategoryAssessment,
		Body: `一、保险条款分析
适用条款：[适用的保险条款]
责任范围：[保险责任范围]
除外责任：[除外责任条款]
特别约定：[特别约定事项]

二、责任认定分析
承保范围：[是否在承保范围内]
除外情况：[是否属于除外情况]
免赔适用：[免赔额的适用]
条件满足：[理赔条件是否满足]

三、理赔责任结论
保险责任：[保险公司应承担的责任]
免赔金额：[应扣除的免赔金额]
赔偿范围：[实际赔偿范围]
特殊说明：[需要特别说明的事项]

四、法律依据
相关法规：[适用的法律法规]
司法解释：[相关司法解释]
行业惯例：[行业通行做法]`,
	},
	{
		ID:          "claim_calculation",
		Title:       "理算结论",
		Description: "损失汇总与理赔金额计算",
		Category:    entity.CategoryAssessment,
		Body: `一、损失汇总
总损失金额：￥[总损失金额]元
其中：
- 直接损失：￥[直接损失金额]元
- 间接损失：￥[间接损失金额]元
- 施救费用：￥[施救费用金额]元
- 其他费用：￥[其他费用金额]元

二、理赔计算
保险金额：￥[保险金额]元
损失金额：￥[确认损失金额]元
免赔金额：￥[免赔金额]元
赔偿金额：￥[最终赔偿金额]元

三、计算过程
[详细的计算过程和依据]

四、理算结论
经核查，本次事故造成的损失在保险责任范围内，建议赔偿金额为：
人民币[赔偿金额大写]元整（￥[赔偿金额]元）`,
	},
	{
		ID:          "conclusion",
		Title:       "结论",
		Description: "基于调查得出的专业公估结论",
		Category:    entity.CategoryConclusion,
		Body: `一、基本结论
1. 事故性质：[事故性质认定]
2. 损失情况：[损失情况总结]
3. 责任认定：[责任认定结论]
4. 理赔建议：[理赔处理建议]

二、主要依据
1. 现场查勘情况
2. 相关技术资料
3. 保险条款约定
4. 法律法规规定

三、处理建议
1. 赔偿建议：建议按保险条款约定赔偿￥[金额]元
2. 注意事项：[需要注意的事项]
3. 后续工作：[需要继续跟进的工作]

四、特别说明
[需要特别说明的重要事项]`,
	},
	{
		ID:          "legal_basis",
		Title:       "法律依据",
		Description: "适用法律法规与行业规范",
		Category:    entity.CategoryLegal,
		Body: `一、适用法律
1. 《中华人民共和国保险法》
2. 《中华人民共和国民法典》
3. 《保险公司理赔管理规定》
4. [其他适用法律法规]

二、相关条款
[引用具体的法律条款内容]

三、司法解释
[相关的司法解释]

四、行业规范
[适用的行业规范和标准]

五、法律分析
[结合案件具体情况的法律分析]`,
	},
	{
		ID:          "usage_limitations",
		Title:       "使用限制",
		Description: "报告使用限制与免责声明",
		Category:    entity.CategoryOther,
		Body: `一、本报告使用限制
1. 本报告仅供委托方使用，不得用于其他目的
2. 本报告的结论基于现有资料和信息
3. 如发现新的重要情况，可能影响报告结论
4. 本报告的有效期为[有效期]

二、免责声明
1. 本报告基于目前掌握的资料和信息作出
2. 对于无法核实的信息，本报告仅作参考
3. 最终理赔决定权归保险公司所有

三、联系方式
公估机构：[公估机构名称]
联系人：[联系人姓名]
电话：[联系电话]
地址：[联系地址]

四、附件清单
[列出报告的附件清单]`,
	},
}
