package services

// Greeter 是问候语策略的抽象：只有一个操作，产出一段问候文本。
// 调用方只依赖该接口，不依赖具体实现，便于替换（如测试桩）。
type Greeter interface {
	Say() string
}

// FrenchGreeter 固定返回法语问候语。
type FrenchGreeter struct{}

// frenchGreeting 是 FrenchGreeter 的固定输出。
const frenchGreeting = "Bonjour le monde!"

// NewFrenchGreeter 以 Greeter 接口形式返回法语策略，供 Wire 注入。
func NewFrenchGreeter() Greeter {
	return FrenchGreeter{}
}

// Say 实现 Greeter。
func (FrenchGreeter) Say() string {
	return frenchGreeting
}

// StaticGreeter returns a fixed caller-provided text.
type StaticGreeter string

// Say implements Greeter.
func (g StaticGreeter) Say() string {
	return string(g)
}

// GreetingService 持有注入的 Greeter 并转发调用，使调用方与具体策略解耦。
// 本身不包含任何独立的业务行为。
type GreetingService struct {
	greeter Greeter
}

// NewGreetingService 构造 GreetingService。greeter 的生命周期由注入方保证覆盖 service。
func NewGreetingService(greeter Greeter) *GreetingService {
	return &GreetingService{greeter: greeter}
}

// SayHelloWorld 委托给持有的策略，每次调用恰好触发一次 Say。
func (s *GreetingService) SayHelloWorld() string {
	return s.greeter.Say()
}
