// Package ocr 提供文字识别服务的 mock 实现
package ocr

import (
	"context"
	"strings"
	"time"

	"claims-ai-api/internal/domain/entity"
	"claims-ai-api/pkg/logger"
	"claims-ai-api/pkg/metrics"
)

const (
	mockConfidence = 0.95
	defaultLang    = "zh-CN"
)

// Recognizer 模拟 OCR 识别器
//
// 按文件名特征返回三类固定文案，并用可配置延迟模拟真实识别耗时，
// 便于前端在没有真实 OCR 服务时联调完整流程。
type Recognizer struct {
	delay    time.Duration
	language string
}

// NewRecognizer 创建识别器，delay 为模拟的处理耗时
func NewRecognizer(delay time.Duration, language string) *Recognizer {
	if language == "" {
		language = defaultLang
	}
	return &Recognizer{delay: delay, language: language}
}

// Recognize 执行识别，延迟期间响应 ctx 取消
func (r *Recognizer) Recognize(ctx context.Context, file *entity.UploadedFile) (*entity.OCRResult, error) {
	start := time.Now()

	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			metrics.OCRJobsTotal.WithLabelValues("canceled").Inc()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	content := pickTranscript(file)
	result := &entity.OCRResult{
		FileID:      file.ID,
		Content:     content,
		Confidence:  mockConfidence,
		ProcessedAt: time.Now(),
		WordCount:   len([]rune(content)),
		Language:    r.language,
	}

	metrics.OCRJobsTotal.WithLabelValues("success").Inc()
	metrics.OCRJobDuration.Observe(time.Since(start).Seconds())
	logger.Info(ctx, "ocr completed",
		"file_id", file.ID,
		"file_name", file.FileName,
		"word_count", result.WordCount,
	)

	return result, nil
}

// pickTranscript 按文件名特征选择模拟文案
func pickTranscript(file *entity.UploadedFile) string {
	name := strings.ToLower(file.FileName + " " + file.ID)
	switch {
	case strings.Contains(name, "image"), strings.Contains(name, "photo"), strings.Contains(name, "pic"):
		return sceneTranscript
	case strings.Contains(name, "contract"), strings.Contains(name, "policy"):
		return contractTranscript
	default:
		return reportTranscript
	}
}

// 模拟识别文案（事故报告 / 现场照片 / 保险合同）
const (
	reportTranscript = `保险事故报告

出险时间：2024年6月7日 14:30
出险地点：上海市浦东新区张江高科技园区
事故性质：设备故障导致的财产损失

详细经过：
1. 当日下午14:30左右，园区内突然停电
2. 备用发电机启动失败，导致电梯系统断电
3. 电梯轿厢被困在5楼与6楼之间
4. 消防队到场后成功救出被困人员
5. 电梯控制系统主板烧毁，需要更换

损失情况：
- 电梯主控制板：12,500元
- 应急通讯系统：3,200元
- 停电期间业务损失：1,551.89元

总计损失：17,251.89元

报告人：张经理
联系电话：138****5678
报告时间：2024年6月7日 16:00`

	sceneTranscript = `事故现场照片说明

图片显示：
- 电梯门打开状态，轿厢停在楼层中间位置
- 控制面板显示故障代码：E-07
- 电梯轿厢内应急照明正常工作
- 楼层显示器黑屏，无数字显示

可见损坏情况：
1. 主控制面板右侧有明显烧焦痕迹
2. 应急通话器指示灯不亮
3. 楼层按钮部分无响应

拍摄时间：2024年6月7日 15:45
拍摄位置：6楼电梯厅
天气状况：晴天，光线充足`

	contractTranscript = `保险合同条款（部分）

第三条 保险责任
保险人对下列原因造成保险标的损失负责赔偿：
(一) 火灾、爆炸
(二) 雷击、暴雨、洪水、台风、暴雪、冰雹、龙卷风、山崩、滑坡、泥石流
(三) 意外事故造成的设备损坏

第五条 责任免除
下列损失，保险人不负责赔偿：
(一) 战争、军事行动或暴乱、罢工
(二) 核反应、核辐射和核污染
(三) 自然磨损、内在缺陷

第八条 赔偿处理
(一) 保险标的发生保险责任范围内的损失，保险人按保险金额与保险价值的比例承担赔偿责任
(二) 每次事故免赔额为人民币500元
(三) 赔偿金额以不超过保险金额为限

保险金额：50万元
免赔额：500元
保险期间：2024年1月1日至2024年12月31日`
)
