package controller

// NoticeKind is the severity of a Notice.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeInfo    NoticeKind = "info"
)

// Notice is a short user-facing message.
type Notice struct {
	Message string     `json:"message"`
	Kind    NoticeKind `json:"kind"`
}

func errorNotice(msg string) *Notice   { return &Notice{Message: msg, Kind: NoticeError} }
func successNotice(msg string) *Notice { return &Notice{Message: msg, Kind: NoticeSuccess} }
func infoNotice(msg string) *Notice    { return &Notice{Message: msg, Kind: NoticeInfo} }

// User-facing messages.
const (
	MsgLoginRequired      = "请先登录"
	MsgLoadRecordsFailed  = "加载记录失败"
	MsgLoadFailed         = "加载失败"
	MsgPageLoadFailed     = "页面加载失败"
	MsgOperationFailed    = "操作失败"
	MsgMissingRecordID    = "缺少记录ID"
	MsgMissingParams      = "缺少必要参数"
	MsgRecordNotFound     = "记录不存在"
	MsgContentRequired    = "请至少添加照片、视频或文字"
	MsgTooManyPhotos      = "最多只能添加9张照片"
	MsgInvalidDate        = "日期格式不正确"
	MsgInvalidTime        = "时间格式不正确"
	MsgUnknownTag         = "标签无效"
	MsgSaveSucceeded      = "保存成功"
	MsgSaveFailed         = "保存失败，请重试"
	MsgUploadFailed       = "文件上传失败"
	MsgDeleteSucceeded    = "删除成功"
	MsgDeleteFailed       = "删除失败，请重试"
	MsgEditOwnOnly        = "只能编辑自己的记录"
	MsgDeleteOwnOnly      = "只能删除自己的记录"
	MsgNicknameRequired   = "请输入宝宝昵称"
	MsgNicknameTooLong    = "宝宝昵称过长"
	MsgBirthdayInvalid    = "生日不能晚于今天"
	MsgSearchKeyword      = "请输入搜索内容"
	MsgSearchFailed       = "搜索失败，请重试"
	MsgNoSearchResults    = "未找到相关宝宝"
	MsgFollowSucceeded    = "关注成功"
	MsgFollowFailed       = "关注失败，请重试"
	MsgAlreadyFollowing   = "已经关注过了"
	MsgSelfFollow         = "不能关注自己的宝宝"
	MsgUnfollowSucceeded  = "已取消关注"
	MsgUnfollowFailed     = "取消关注失败"
	MsgBabyIDUnavailable  = "生成宝宝ID失败"
	MsgDefaultBabyName    = "宝宝"
	MsgDefaultRecordTitle = "记录美好瞬间"
)

// Page names a navigation target.
type Page string

const (
	PageAddRecord          Page = "add-record"
	PageRecordDetail       Page = "record-detail"
	PageRecordList         Page = "record-list"
	PageFollowedRecordList Page = "followed-record-list"
	PageBabyInfo           Page = "baby-info"
	PageBack               Page = "back"
)

// Source identifies the page a detail view was opened from.
type Source string

const (
	SourceOwn          Source = ""
	SourceFollowedList Source = "followed-record-list"
)

// Navigation is a page transition with its query parameters.
type Navigation struct {
	Target Page              `json:"target"`
	Params map[string]string `json:"params,omitempty"`
}

func navigate(target Page, kv ...string) *Navigation {
	n := &Navigation{Target: target}
	if len(kv) > 0 {
		n.Params = make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			n.Params[kv[i]] = kv[i+1]
		}
	}
	return n
}

// NavigateBack returns to the previous page.
func NavigateBack() *Navigation { return &Navigation{Target: PageBack} }
